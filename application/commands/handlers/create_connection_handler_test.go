package handlers

import (
	"context"
	"testing"

	"polyamgraph/application/commands"
	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/core/valueobjects"
	pkgerrors "polyamgraph/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateConnectionHandler_CreatesPendingRequest(t *testing.T) {
	bob := &entities.Profile{ID: "prof-2", UserID: "user-2", Username: "bob"}
	profileRepo := newFakeProfileRepo(bob)
	connectionRepo := newFakeConnectionRepo()

	handler := NewCreateConnectionHandler(profileRepo, connectionRepo, zap.NewNop())

	err := handler.Handle(context.Background(), commands.CreateConnectionCommand{
		RequesterID:       "user-1",
		AddresseeUsername: "bob",
		RelationshipType:  "partner",
	})

	require.NoError(t, err)
	require.Len(t, connectionRepo.created, 1)
	assert.Equal(t, "user-1", connectionRepo.created[0].RequesterID)
	assert.Equal(t, "user-2", connectionRepo.created[0].AddresseeID)
	assert.Equal(t, valueobjects.RelationshipPartner, connectionRepo.created[0].RelType)
}

func TestCreateConnectionHandler_UnknownUsername(t *testing.T) {
	handler := NewCreateConnectionHandler(newFakeProfileRepo(), newFakeConnectionRepo(), zap.NewNop())

	err := handler.Handle(context.Background(), commands.CreateConnectionCommand{
		RequesterID:       "user-1",
		AddresseeUsername: "nobody",
		RelationshipType:  "friend",
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestCreateConnectionHandler_RejectsSelfConnection(t *testing.T) {
	me := &entities.Profile{ID: "prof-1", UserID: "user-1", Username: "alice"}
	connectionRepo := newFakeConnectionRepo()
	handler := NewCreateConnectionHandler(newFakeProfileRepo(me), connectionRepo, zap.NewNop())

	err := handler.Handle(context.Background(), commands.CreateConnectionCommand{
		RequesterID:       "user-1",
		AddresseeUsername: "alice",
		RelationshipType:  "friend",
	})

	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Empty(t, connectionRepo.created)
}

func TestCreateConnectionHandler_RejectsDuplicatePair(t *testing.T) {
	bob := &entities.Profile{ID: "prof-2", UserID: "user-2", Username: "bob"}

	// Any existing record blocks a new request: pending, accepted or
	// blocked, in either direction.
	tests := []struct {
		name   string
		status valueobjects.ConnectionStatus
		swap   bool
	}{
		{name: "pending same direction", status: valueobjects.StatusPending},
		{name: "accepted same direction", status: valueobjects.StatusAccepted},
		{name: "blocked same direction", status: valueobjects.StatusBlocked},
		{name: "pending reversed", status: valueobjects.StatusPending, swap: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := entities.Connection{
				ID:          "conn-1",
				RequesterID: "user-1",
				AddresseeID: "user-2",
				Status:      tt.status,
			}
			if tt.swap {
				existing.RequesterID, existing.AddresseeID = existing.AddresseeID, existing.RequesterID
			}

			connectionRepo := newFakeConnectionRepo(existing)
			handler := NewCreateConnectionHandler(newFakeProfileRepo(bob), connectionRepo, zap.NewNop())

			err := handler.Handle(context.Background(), commands.CreateConnectionCommand{
				RequesterID:       "user-1",
				AddresseeUsername: "bob",
				RelationshipType:  "friend",
			})

			require.Error(t, err)
			assert.True(t, pkgerrors.IsConflict(err))
			assert.Empty(t, connectionRepo.created)
		})
	}
}

func TestCreateConnectionCommand_Validate(t *testing.T) {
	valid := commands.CreateConnectionCommand{
		RequesterID:       "user-1",
		AddresseeUsername: "bob",
		RelationshipType:  "meta",
	}
	assert.NoError(t, valid.Validate())

	badType := valid
	badType.RelationshipType = "situationship"
	assert.Error(t, badType.Validate())

	noUsername := valid
	noUsername.AddresseeUsername = ""
	assert.Error(t, noUsername.Validate())
}
