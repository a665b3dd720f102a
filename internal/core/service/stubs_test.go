package service

import (
	"context"
	"fmt"

	"github.com/repairworks/backoffice/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

type stubUsers struct {
	users map[string]*domain.User // keyed by id
}

func newStubUsers(users ...domain.User) *stubUsers {
	s := &stubUsers{users: make(map[string]*domain.User)}
	for i := range users {
		u := users[i]
		s.users[u.ID] = &u
	}
	return s
}

func (s *stubUsers) FindByLogin(_ context.Context, login string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Login == login {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *stubUsers) ListRegular(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range s.users {
		if !u.IsAdmin {
			out = append(out, *u)
		}
	}
	return out, nil
}

type stubSessions struct {
	sessions map[string]domain.Principal
	next     int
}

func newStubSessions() *stubSessions {
	return &stubSessions{sessions: make(map[string]domain.Principal)}
}

func (s *stubSessions) Issue(_ context.Context, p domain.Principal) (string, error) {
	s.next++
	token := fmt.Sprintf("token-%d", s.next)
	s.sessions[token] = p
	return token, nil
}

func (s *stubSessions) Resolve(_ context.Context, token string) (*domain.Principal, error) {
	p, ok := s.sessions[token]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return &p, nil
}

func (s *stubSessions) Revoke(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

type stubClients struct {
	docs map[string]*domain.Client
}

func newStubClients(docs ...domain.Client) *stubClients {
	s := &stubClients{docs: make(map[string]*domain.Client)}
	for i := range docs {
		c := docs[i]
		s.docs[c.ID] = &c
	}
	return s
}

func (s *stubClients) List(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(s.docs))
	for _, c := range s.docs {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubClients) FindByID(_ context.Context, id string) (*domain.Client, error) {
	c, ok := s.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *stubClients) Insert(_ context.Context, c *domain.Client) error {
	s.docs[c.ID] = c
	return nil
}

func (s *stubClients) Delete(_ context.Context, id string) error {
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

type stubContractors struct {
	docs map[string]*domain.Contractor
}

func newStubContractors(docs ...domain.Contractor) *stubContractors {
	s := &stubContractors{docs: make(map[string]*domain.Contractor)}
	for i := range docs {
		c := docs[i]
		s.docs[c.ID] = &c
	}
	return s
}

func (s *stubContractors) List(_ context.Context) ([]domain.Contractor, error) {
	out := make([]domain.Contractor, 0, len(s.docs))
	for _, c := range s.docs {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubContractors) FindByID(_ context.Context, id string) (*domain.Contractor, error) {
	c, ok := s.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (s *stubContractors) Insert(_ context.Context, c *domain.Contractor) error {
	s.docs[c.ID] = c
	return nil
}

func (s *stubContractors) Delete(_ context.Context, id string) error {
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

type stubObjects struct {
	docs map[string]*domain.WorkObject
}

func newStubObjects(docs ...domain.WorkObject) *stubObjects {
	s := &stubObjects{docs: make(map[string]*domain.WorkObject)}
	for i := range docs {
		o := docs[i]
		s.docs[o.ID] = &o
	}
	return s
}

func (s *stubObjects) List(_ context.Context) ([]domain.WorkObject, error) {
	out := make([]domain.WorkObject, 0, len(s.docs))
	for _, o := range s.docs {
		out = append(out, *o)
	}
	return out, nil
}

func (s *stubObjects) FindByID(_ context.Context, id string) (*domain.WorkObject, error) {
	o, ok := s.docs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *o
	return &clone, nil
}

func (s *stubObjects) Insert(_ context.Context, o *domain.WorkObject) error {
	s.docs[o.ID] = o
	return nil
}

func (s *stubObjects) Delete(_ context.Context, id string) error {
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

type stubMaterials struct {
	docs map[string]*domain.Material
}

func newStubMaterials(docs ...domain.Material) *stubMaterials {
	s := &stubMaterials{docs: make(map[string]*domain.Material)}
	for i := range docs {
		m := docs[i]
		s.docs[m.ID] = &m
	}
	return s
}

func (s *stubMaterials) List(_ context.Context) ([]domain.Material, error) {
	out := make([]domain.Material, 0, len(s.docs))
	for _, m := range s.docs {
		out = append(out, *m)
	}
	return out, nil
}

func (s *stubMaterials) FindByIDs(_ context.Context, ids []string) ([]domain.Material, error) {
	var out []domain.Material
	for _, id := range ids {
		if m, ok := s.docs[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (s *stubMaterials) Insert(_ context.Context, m *domain.Material) error {
	s.docs[m.ID] = m
	return nil
}

func (s *stubMaterials) Delete(_ context.Context, id string) error {
	if _, ok := s.docs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

type stubOrders struct {
	orders []domain.Order
	next   int
}

func newStubOrders() *stubOrders {
	return &stubOrders{}
}

func (s *stubOrders) Insert(_ context.Context, o *domain.Order) error {
	s.next++
	o.ID = fmt.Sprintf("order-%d", s.next)
	s.orders = append(s.orders, *o)
	return nil
}

func (s *stubOrders) ListAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *stubOrders) ListForUser(_ context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range s.orders {
		if o.UserID == userID || o.AssignedUserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *stubOrders) Delete(_ context.Context, id string) error {
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return domain.ErrOrderNotFound
}
