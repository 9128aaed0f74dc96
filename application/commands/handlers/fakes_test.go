package handlers

import (
	"context"

	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/core/valueobjects"
	pkgerrors "polyamgraph/pkg/errors"
)

// In-memory port implementations for handler tests.

type fakeProfileRepo struct {
	profiles []*entities.Profile
	updates  map[string]entities.ProfileUpdate
	failWith error
}

func newFakeProfileRepo(profiles ...*entities.Profile) *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: profiles,
		updates:  map[string]entities.ProfileUpdate{},
	}
}

func (f *fakeProfileRepo) FindByUserID(_ context.Context, userID string) (*entities.Profile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("profile")
}

func (f *fakeProfileRepo) FindByUsername(_ context.Context, username string) (*entities.Profile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.profiles {
		if p.Username == username {
			return p, nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("profile")
}

func (f *fakeProfileRepo) ListVisible(_ context.Context) ([]entities.Profile, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	visible := []entities.Profile{}
	for _, p := range f.profiles {
		if p.ShowInNetwork {
			visible = append(visible, *p)
		}
	}
	return visible, nil
}

func (f *fakeProfileRepo) Update(_ context.Context, userID string, update entities.ProfileUpdate) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.updates[userID] = update
	return nil
}

type createdConnection struct {
	RequesterID string
	AddresseeID string
	RelType     valueobjects.RelationshipType
}

type fakeConnectionRepo struct {
	connections   []entities.Connection
	created       []createdConnection
	statusUpdates map[string]valueobjects.ConnectionStatus
	deleted       []string
	failWith      error
}

func newFakeConnectionRepo(connections ...entities.Connection) *fakeConnectionRepo {
	return &fakeConnectionRepo{
		connections:   connections,
		statusUpdates: map[string]valueobjects.ConnectionStatus{},
	}
}

func (f *fakeConnectionRepo) ListForUser(_ context.Context, userID string) ([]entities.Connection, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	result := []entities.Connection{}
	for _, c := range f.connections {
		if c.Involves(userID) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConnectionRepo) FindByID(_ context.Context, connectionID string) (*entities.Connection, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.connections {
		if f.connections[i].ID == connectionID {
			return &f.connections[i], nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("connection")
}

func (f *fakeConnectionRepo) FindBetween(_ context.Context, userA, userB string) (*entities.Connection, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.connections {
		if f.connections[i].Between(userA, userB) {
			return &f.connections[i], nil
		}
	}
	return nil, pkgerrors.NewNotFoundError("connection")
}

func (f *fakeConnectionRepo) ListAmong(_ context.Context, userIDs []string) ([]entities.Connection, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	inSet := map[string]bool{}
	for _, id := range userIDs {
		inSet[id] = true
	}
	result := []entities.Connection{}
	for _, c := range f.connections {
		if inSet[c.RequesterID] && inSet[c.AddresseeID] {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeConnectionRepo) Create(_ context.Context, requesterID, addresseeID string, relType valueobjects.RelationshipType) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.created = append(f.created, createdConnection{
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		RelType:     relType,
	})
	return nil
}

func (f *fakeConnectionRepo) UpdateStatus(_ context.Context, connectionID string, status valueobjects.ConnectionStatus) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.statusUpdates[connectionID] = status
	for i := range f.connections {
		if f.connections[i].ID == connectionID {
			f.connections[i].Status = status
		}
	}
	return nil
}

func (f *fakeConnectionRepo) Delete(_ context.Context, connectionID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.deleted = append(f.deleted, connectionID)
	kept := f.connections[:0]
	for _, c := range f.connections {
		if c.ID != connectionID {
			kept = append(kept, c)
		}
	}
	f.connections = kept
	return nil
}
