package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_Find(t *testing.T) {
	snap := &Snapshot{Profiles: []Profile{{ID: "1", Username: "a"}, {ID: "2", Username: "b"}}}

	assert.Equal(t, "b", snap.Find("2").Username)
	assert.Nil(t, snap.Find("3"))
	assert.Nil(t, snap.Find(""))

	var empty *Snapshot
	assert.Nil(t, empty.Find("1"))
	assert.Empty(t, empty.List())
}

func TestSnapshot_ListIsACopy(t *testing.T) {
	snap := &Snapshot{Profiles: []Profile{{ID: "1", Username: "a"}}}

	list := snap.List()
	list[0].Username = "changed"

	assert.Equal(t, "a", snap.Profiles[0].Username)
}

func TestParsePresenceStatus(t *testing.T) {
	assert.Equal(t, PresenceDND, ParsePresenceStatus("dnd"))
	assert.Equal(t, PresenceOffline, ParsePresenceStatus("offline"))
	assert.Equal(t, PresenceStatus(""), ParsePresenceStatus("invisible"))
}
