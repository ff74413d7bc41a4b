package announcement_test

import (
	"context"
	"fmt"
	"recipebox/domain"
	"recipebox/internal/testutil"
	"recipebox/pkg/announcement"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncements(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	svc := announcement.NewAnnouncementService(announcement.NewAnnouncementRepository(db))
	alice := testutil.CreateUser(t, db, "alice", "pw")

	empty, err := svc.GetLatestAnnouncements(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for i := 0; i < domain.AnnouncementListLimit+3; i++ {
		require.NoError(t, svc.PostAnnouncement(ctx, domain.AnnouncementRequest{
			Link:    fmt.Sprintf("https://example.com/%d", i),
			Content: fmt.Sprintf("news %d", i),
		}, alice.ID.String()))
		time.Sleep(2 * time.Millisecond)
	}

	latest, err := svc.GetLatestAnnouncements(ctx)
	require.NoError(t, err)
	require.Len(t, latest, domain.AnnouncementListLimit)
	assert.Equal(t, fmt.Sprintf("news %d", domain.AnnouncementListLimit+2), latest[0].Description)
	assert.Equal(t, "alice", latest[0].Username)
	assert.Equal(t, "https://example.com/12", latest[0].Link)

	err = svc.PostAnnouncement(ctx, domain.AnnouncementRequest{Content: "x"}, "nope")
	require.ErrorIs(t, err, domain.ErrParseUUID)
}
