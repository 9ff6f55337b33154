package domain_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"presence-lab/domain"
	"presence-lab/errors"
	"presence-lab/mocks"
)

func newDirectory() *domain.Directory {
	return domain.NewDirectory(slog.Default())
}

// attach wires a fresh mock session to a new participant, absorbing the
// contact-list push every attach produces.
func attach(t *testing.T, ctrl *gomock.Controller, dir *domain.Directory, name string) (*domain.Participant, *mocks.MockClientSession) {
	t.Helper()
	p, _ := dir.CreateParticipant(name)
	client := mocks.NewMockClientSession(ctrl)
	client.EXPECT().ReceiveContactList(gomock.Any()).Return(nil)
	attached, err := p.Attach(client)
	require.NoError(t, err)
	require.Same(t, p, attached)
	return p, client
}

func Test_Attach_Transitions_Online_And_Notifies_Watchers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")

	// Alice watches bob before he logs in.
	bob, _ := dir.CreateParticipant("bob")
	aliceClient.EXPECT().NotifyStatusChanged("bob", domain.Offline).Return(nil)
	req.NoError(alice.AddContact("bob"))

	// Bob's attach must fan his Online status out to alice.
	bobClient := mocks.NewMockClientSession(ctrl)
	bobClient.EXPECT().ReceiveContactList(gomock.Any()).Return(nil)
	aliceClient.EXPECT().NotifyStatusChanged("bob", domain.Online).Return(nil)
	_, err := bob.Attach(bobClient)
	req.NoError(err)
	req.Equal(domain.Online, bob.Status())
}

func Test_Attach_Pushes_Current_Contact_List(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	_, _ = attach(t, ctrl, dir, "bob")
	aliceClient.EXPECT().NotifyStatusChanged("bob", domain.Online).Return(nil)
	req.NoError(alice.AddContact("bob"))

	alice.Detach()

	// Reattaching must replay the full list with bob's current status.
	reClient := mocks.NewMockClientSession(ctrl)
	reClient.EXPECT().
		ReceiveContactList([]domain.ContactStatus{{Name: "bob", Status: domain.Online}}).
		Return(nil)
	_, err := alice.Attach(reClient)
	req.NoError(err)
}

func Test_Attach_Refuses_Duplicate_Login(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")

	second := mocks.NewMockClientSession(ctrl)
	_, err := alice.Attach(second)
	req.Error(err)
	var authErr errors.AuthorizationError
	req.ErrorAs(err, &authErr)
}

func Test_Attach_Replaces_Placeholder(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := dir.CreateParticipant("alice")
	_, err := alice.Attach(domain.Placeholder{})
	req.NoError(err)

	client := mocks.NewMockClientSession(ctrl)
	client.EXPECT().ReceiveContactList(gomock.Any()).Return(nil)
	_, err = alice.Attach(client)
	req.NoError(err)
}

func Test_Contact_Edges_Stay_Symmetric(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	bob, _ := attach(t, ctrl, dir, "bob")

	aliceClient.EXPECT().NotifyStatusChanged("bob", domain.Online).Return(nil)
	req.NoError(alice.AddContact("bob"))
	req.Equal([]string{"bob"}, alice.Contacts())
	req.Equal([]string{"alice"}, bob.ReverseContacts())

	req.NoError(alice.RemoveContact("bob"))
	req.Empty(alice.Contacts())
	req.Empty(bob.ReverseContacts())
}

func Test_AddContact_Unknown_Participant_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	err := alice.AddContact("ghost")
	var missing errors.UserNonexistantError
	req.ErrorAs(err, &missing)
	req.Equal("ghost", missing.Name)
}

func Test_RemoveContact_Absent_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	err := alice.RemoveContact("bob")
	var notIn errors.NotInCollectionError
	req.ErrorAs(err, &notIn)
	req.Equal("bob", notIn.Contact)
}

func Test_Status_Change_Fans_Out_To_Reverse_Contacts(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	bob, _ := attach(t, ctrl, dir, "bob")
	aliceClient.EXPECT().NotifyStatusChanged("bob", domain.Online).Return(nil)
	req.NoError(alice.AddContact("bob"))

	aliceClient.EXPECT().NotifyStatusChanged("bob", domain.Away).Return(nil)
	bob.ChangeStatus(domain.Away)
	req.Equal(domain.Away, bob.Status())
}

func Test_ChangeStatus_Is_Permissive_While_Detached(t *testing.T) {
	req := require.New(t)
	dir := newDirectory()

	// No session, no precondition: a detached participant can be toggled.
	alice, _ := dir.CreateParticipant("alice")
	alice.ChangeStatus(domain.Away)
	req.Equal(domain.Away, alice.Status())
}

func Test_JoinGroup_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	aliceClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(alice.JoinGroup("lobby"))
	req.NoError(alice.JoinGroup("lobby"))

	req.Equal([]string{"lobby"}, alice.Groups())
	req.Equal([]string{"alice"}, dir.Group("lobby").Members())
}

func Test_LeaveGroup_Not_A_Member_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	err := alice.LeaveGroup("lobby")
	var notIn errors.NotInGroupError
	req.ErrorAs(err, &notIn)
	req.Equal("lobby", notIn.Group)
}

func Test_Detach_Leaves_Groups_And_Goes_Offline(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	aliceClient.EXPECT().SetGroupMetadata(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	req.NoError(alice.JoinGroup("lobby"))
	req.NoError(alice.JoinGroup("lounge"))

	alice.Detach()

	req.Equal(domain.Offline, alice.Status())
	req.Empty(alice.Groups())
	req.Empty(dir.Group("lobby").Members())
	req.Empty(dir.Group("lounge").Members())
}

func Test_GroupMembers_Pushes_List_And_Returns(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	aliceClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(alice.JoinGroup("lobby"))

	// Success path must not raise: the push is the result.
	aliceClient.EXPECT().ReceiveGroupMembers([]string{"alice"}, "lobby").Return(nil)
	req.NoError(alice.GroupMembers("lobby"))
}

func Test_GroupMembers_Not_A_Member_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	err := alice.GroupMembers("lobby")
	var notIn errors.NotInGroupError
	req.ErrorAs(err, &notIn)
}

func Test_GroupMetadata_Pushes_For_Members_Only(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")

	// Not a member: silent no-op, nothing pushed.
	alice.GroupMetadata("lobby")

	aliceClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(alice.JoinGroup("lobby"))

	aliceClient.EXPECT().
		SetGroupMetadata(map[string]string{"topic": "Welcome to lobby!", "topic_author": "admin"}, "lobby").
		Return(nil)
	alice.GroupMetadata("lobby")
}

func Test_DirectMessage_Unknown_Recipient_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	err := alice.DirectMessage("ghost", "hi", nil)
	var missing errors.UserNonexistantError
	req.ErrorAs(err, &missing)
	req.Equal("ghost", missing.Name)
}

func Test_DirectMessage_Detached_Recipient_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	dir.CreateParticipant("bob")

	err := alice.DirectMessage("bob", "hi", nil)
	var wrongStatus errors.WrongStatusError
	req.ErrorAs(err, &wrongStatus)
	req.Equal("bob", wrongStatus.Name)
	req.Equal("Offline", wrongStatus.Status)
}

func Test_DirectMessage_Without_Metadata_Is_Pushed_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	_, bobClient := attach(t, ctrl, dir, "bob")

	bobClient.EXPECT().ReceiveDirectMessage("alice", "hi", domain.Metadata(nil)).Return(nil)
	req.NoError(alice.DirectMessage("bob", "hi", nil))
}

func Test_DirectMessage_Metadata_Fallback_Retries_Exactly_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	_, bobClient := attach(t, ctrl, dir, "bob")

	metadata := domain.Metadata{"style": "emote"}
	gomock.InOrder(
		bobClient.EXPECT().
			ReceiveDirectMessage("alice", "waves", metadata).
			Return(errors.ErrMetadataUnsupported),
		bobClient.EXPECT().
			ReceiveDirectMessage("alice", "waves", domain.Metadata(nil)).
			Return(nil),
	)
	req.NoError(alice.DirectMessage("bob", "waves", metadata))
}

func Test_DirectMessage_Metadata_Kept_When_Supported(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	_, bobClient := attach(t, ctrl, dir, "bob")

	metadata := domain.Metadata{"style": "emote"}
	bobClient.EXPECT().ReceiveDirectMessage("alice", "waves", metadata).Return(nil)
	req.NoError(alice.DirectMessage("bob", "waves", metadata))
}

func Test_GroupMessage_Not_A_Member_Fails(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, _ := attach(t, ctrl, dir, "alice")
	err := alice.GroupMessage("lobby", "hi", nil)
	var notIn errors.NotInGroupError
	req.ErrorAs(err, &notIn)
	req.Equal("lobby", notIn.Group)
}

func Test_GroupMessage_Skips_Sender_And_Falls_Back_Per_Member(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	bob, bobClient := attach(t, ctrl, dir, "bob")
	clara, claraClient := attach(t, ctrl, dir, "clara")

	aliceClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(alice.JoinGroup("lobby"))
	aliceClient.EXPECT().MemberJoined("bob", "lobby").Return(nil)
	bobClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(bob.JoinGroup("lobby"))
	aliceClient.EXPECT().MemberJoined("clara", "lobby").Return(nil)
	bobClient.EXPECT().MemberJoined("clara", "lobby").Return(nil)
	claraClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(clara.JoinGroup("lobby"))

	// Bob's session refuses metadata and gets the stripped retry; clara's
	// takes it as-is; alice, the sender, hears nothing.
	metadata := domain.Metadata{"style": "emote"}
	gomock.InOrder(
		bobClient.EXPECT().
			ReceiveGroupMessage("alice", "lobby", "dances", metadata).
			Return(errors.ErrMetadataUnsupported),
		bobClient.EXPECT().
			ReceiveGroupMessage("alice", "lobby", "dances", domain.Metadata(nil)).
			Return(nil),
	)
	claraClient.EXPECT().ReceiveGroupMessage("alice", "lobby", "dances", metadata).Return(nil)
	req.NoError(alice.GroupMessage("lobby", "dances", metadata))
}

func Test_GroupMessage_Detached_Member_Is_Silently_Skipped(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	dir := newDirectory()

	alice, aliceClient := attach(t, ctrl, dir, "alice")
	aliceClient.EXPECT().SetGroupMetadata(gomock.Any(), "lobby").Return(nil)
	req.NoError(alice.JoinGroup("lobby"))

	// A member without a session joined permissively; delivery to it is a
	// no-op, unlike the direct-message path which errors.
	bob, _ := dir.CreateParticipant("bob")
	aliceClient.EXPECT().MemberJoined("bob", "lobby").Return(nil)
	req.NoError(bob.JoinGroup("lobby"))

	req.NoError(alice.GroupMessage("lobby", "anyone here?", nil))
}

func Test_UpdateInfo_Is_Reflected_In_Snapshot(t *testing.T) {
	req := require.New(t)
	dir := newDirectory()

	alice, _ := dir.CreateParticipant("alice")
	alice.UpdateInfo("likes long walks")
	req.Equal("likes long walks", alice.Info())
	req.Equal("likes long walks", alice.Snapshot().Info)
}
