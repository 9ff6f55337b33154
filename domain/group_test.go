package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Group_Seeds_Welcome_Metadata(t *testing.T) {
	req := require.New(t)
	dir := newDirectory()

	lobby := dir.Group("lobby")
	req.Equal(map[string]string{
		"topic":        "Welcome to lobby!",
		"topic_author": "admin",
	}, lobby.Metadata())

	// Resolving again yields the same instance, not a reseeded one.
	req.Same(lobby, dir.Group("lobby"))
}

func Test_Group_Join_Notifies_Existing_Members_Only(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	aliceClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(alice.JoinGroup("lobby"))

	// Alice hears about bob; bob gets the metadata snapshot and no
	// MemberJoined echo for himself.
	bob, bobClient := attach(t, ctrl, dir, "bob")
	aliceClient.EXPECT().MemberJoined("bob", "lobby").Return(nil)
	bobClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(bob.JoinGroup("lobby"))

	req.Equal([]string{"alice", "bob"}, dir.Group("lobby").Members())
}

func Test_Group_Leave_Notifies_Remaining_Members(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	aliceClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(alice.JoinGroup("lobby"))

	bob, bobClient := attach(t, ctrl, dir, "bob")
	aliceClient.EXPECT().MemberJoined("bob", "lobby").Return(nil)
	bobClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(bob.JoinGroup("lobby"))

	aliceClient.EXPECT().MemberLeft("bob", "lobby").Return(nil)
	req.NoError(bob.LeaveGroup("lobby"))

	req.Equal([]string{"alice"}, dir.Group("lobby").Members())
	req.Empty(bob.Groups())
}

func Test_Group_SetMetadata_Merges_And_Pushes_The_Update(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	aliceClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(alice.JoinGroup("lobby"))

	// Members receive only the partial update, not the merged map.
	update := map[string]string{"topic": "release day", "topic_author": "alice"}
	aliceClient.EXPECT().SetGroupMetadata(update, "lobby").Return(nil)
	dir.Group("lobby").SetMetadata(update)

	req.Equal(map[string]string{
		"topic":        "release day",
		"topic_author": "alice",
	}, dir.Group("lobby").Metadata())
}
