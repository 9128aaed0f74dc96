package handlers

import (
	"context"
	"testing"

	"polyamgraph/application/queries"
	"polyamgraph/domain/core/entities"
	"polyamgraph/domain/core/valueobjects"
	pkgerrors "polyamgraph/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func networkProfile(userID, username string) *entities.Profile {
	return &entities.Profile{
		ID:            "prof-" + userID,
		UserID:        userID,
		Username:      username,
		ShowInNetwork: true,
	}
}

func acceptedConnection(id string, requester, addressee *entities.Profile) entities.Connection {
	return entities.Connection{
		ID:               id,
		RequesterID:      requester.UserID,
		AddresseeID:      addressee.UserID,
		Status:           valueobjects.StatusAccepted,
		RelationshipType: valueobjects.RelationshipPartner,
		IsVisible:        true,
		RequesterProfile: requester,
		AddresseeProfile: addressee,
	}
}

func TestGetNetworkHandler_AssemblesGraph(t *testing.T) {
	viewer := networkProfile("user-1", "alice")
	bob := networkProfile("user-2", "bob")

	profileRepo := newFakeProfileRepo(viewer, bob)
	connectionRepo := newFakeConnectionRepo(acceptedConnection("conn-1", viewer, bob))
	handler := NewGetNetworkHandler(profileRepo, connectionRepo, zap.NewNop())

	raw, err := handler.Handle(context.Background(), queries.GetNetworkQuery{UserID: "user-1"})
	require.NoError(t, err)

	result, ok := raw.(*queries.GetNetworkResult)
	require.True(t, ok)

	require.NotNil(t, result.Graph)
	assert.Len(t, result.Graph.Nodes, 2)
	assert.Len(t, result.Graph.Edges, 1)
	assert.Equal(t, viewer, result.Profile)
	assert.Len(t, result.Connections, 1)
	assert.Len(t, result.Profiles, 2)
}

func TestGetNetworkHandler_PendingBecomesVisibleAfterAccept(t *testing.T) {
	viewer := networkProfile("user-1", "alice")
	bob := networkProfile("user-2", "bob")

	pending := acceptedConnection("conn-1", bob, viewer)
	pending.Status = valueobjects.StatusPending

	profileRepo := newFakeProfileRepo(viewer, bob)
	connectionRepo := newFakeConnectionRepo(pending)
	handler := NewGetNetworkHandler(profileRepo, connectionRepo, zap.NewNop())

	raw, err := handler.Handle(context.Background(), queries.GetNetworkQuery{UserID: "user-1"})
	require.NoError(t, err)
	result := raw.(*queries.GetNetworkResult)

	// A pending request contributes nothing to the rendered graph.
	assert.Len(t, result.Graph.Nodes, 1)
	assert.Empty(t, result.Graph.Edges)

	require.NoError(t, connectionRepo.UpdateStatus(context.Background(), "conn-1", valueobjects.StatusAccepted))

	raw, err = handler.Handle(context.Background(), queries.GetNetworkQuery{UserID: "user-1"})
	require.NoError(t, err)
	result = raw.(*queries.GetNetworkResult)

	assert.Len(t, result.Graph.Nodes, 2)
	assert.Len(t, result.Graph.Edges, 1)
}

func TestGetNetworkHandler_IncludesPeerConnections(t *testing.T) {
	viewer := networkProfile("user-1", "alice")
	bob := networkProfile("user-2", "bob")
	carol := networkProfile("user-3", "carol")

	// Bob and Carol are connected to each other; that record does not
	// involve the viewer but must still surface as a dashed edge.
	peerRecord := entities.Connection{
		ID:               "conn-3",
		RequesterID:      bob.UserID,
		AddresseeID:      carol.UserID,
		Status:           valueobjects.StatusAccepted,
		RelationshipType: valueobjects.RelationshipMeta,
		IsVisible:        true,
	}

	profileRepo := newFakeProfileRepo(viewer, bob, carol)
	connectionRepo := newFakeConnectionRepo(
		acceptedConnection("conn-1", viewer, bob),
		acceptedConnection("conn-2", viewer, carol),
		peerRecord,
	)
	handler := NewGetNetworkHandler(profileRepo, connectionRepo, zap.NewNop())

	raw, err := handler.Handle(context.Background(), queries.GetNetworkQuery{UserID: "user-1"})
	require.NoError(t, err)
	result := raw.(*queries.GetNetworkResult)

	require.Len(t, result.Graph.Edges, 3)
	assert.Equal(t, "meta-user-2-user-3", result.Graph.Edges[2].ID)
	assert.Equal(t, "5,5", result.Graph.Edges[2].Style.StrokeDasharray)

	// The raw connection list stays viewer-scoped.
	assert.Len(t, result.Connections, 2)
}

func TestGetNetworkHandler_PropagatesFetchFailure(t *testing.T) {
	viewer := networkProfile("user-1", "alice")

	profileRepo := newFakeProfileRepo(viewer)
	connectionRepo := newFakeConnectionRepo()
	connectionRepo.failWith = pkgerrors.NewDatabaseError("list connections", assert.AnError)

	handler := NewGetNetworkHandler(profileRepo, connectionRepo, zap.NewNop())

	_, err := handler.Handle(context.Background(), queries.GetNetworkQuery{UserID: "user-1"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeDatabase))
}

func TestGetNetworkHandler_UnknownViewer(t *testing.T) {
	handler := NewGetNetworkHandler(newFakeProfileRepo(), newFakeConnectionRepo(), zap.NewNop())

	_, err := handler.Handle(context.Background(), queries.GetNetworkQuery{UserID: "user-404"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}
