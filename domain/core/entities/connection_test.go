package entities

import (
	"testing"

	"polyamgraph/domain/core/valueobjects"

	"github.com/stretchr/testify/assert"
)

func TestConnectionInvolvesAndBetween(t *testing.T) {
	conn := Connection{RequesterID: "user-1", AddresseeID: "user-2"}

	assert.True(t, conn.Involves("user-1"))
	assert.True(t, conn.Involves("user-2"))
	assert.False(t, conn.Involves("user-3"))

	assert.True(t, conn.Between("user-1", "user-2"))
	assert.True(t, conn.Between("user-2", "user-1"))
	assert.False(t, conn.Between("user-1", "user-3"))
}

func TestConnectionOtherProfile(t *testing.T) {
	requester := &Profile{UserID: "user-1", Username: "alice"}
	addressee := &Profile{UserID: "user-2", Username: "bob"}

	conn := Connection{
		RequesterID:      "user-1",
		AddresseeID:      "user-2",
		RequesterProfile: requester,
		AddresseeProfile: addressee,
	}

	assert.Equal(t, addressee, conn.OtherProfile("user-1"))
	assert.Equal(t, requester, conn.OtherProfile("user-2"))

	conn.AddresseeProfile = nil
	assert.Nil(t, conn.OtherProfile("user-1"))
}

func TestConnectionIsDisplayable(t *testing.T) {
	tests := []struct {
		name    string
		status  valueobjects.ConnectionStatus
		visible bool
		want    bool
	}{
		{name: "accepted visible", status: valueobjects.StatusAccepted, visible: true, want: true},
		{name: "accepted hidden", status: valueobjects.StatusAccepted, visible: false, want: false},
		{name: "pending visible", status: valueobjects.StatusPending, visible: true, want: false},
		{name: "blocked visible", status: valueobjects.StatusBlocked, visible: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := Connection{Status: tt.status, IsVisible: tt.visible}
			assert.Equal(t, tt.want, conn.IsDisplayable())
		})
	}
}

func TestProfileDisplayLabel(t *testing.T) {
	name := "Alice Example"
	empty := ""

	withName := Profile{Username: "alice", DisplayName: &name}
	assert.Equal(t, "Alice Example", withName.DisplayLabel())

	withEmptyName := Profile{Username: "alice", DisplayName: &empty}
	assert.Equal(t, "alice", withEmptyName.DisplayLabel())

	withoutName := Profile{Username: "alice"}
	assert.Equal(t, "alice", withoutName.DisplayLabel())
}

func TestProfileUpdateIsEmpty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.IsEmpty())

	bio := "hi"
	assert.False(t, ProfileUpdate{Bio: &bio}.IsEmpty())

	show := false
	assert.False(t, ProfileUpdate{ShowInNetwork: &show}.IsEmpty())
}
