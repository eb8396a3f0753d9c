package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/kv"
)

func TestCatalogSeedAndList(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewCatalogService(store)
	ctx := context.Background()

	require.NoError(t, svc.SeedSampleData(ctx))

	resources, err := svc.ListResources(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 3)
	require.Equal(t, "res-1", resources[0].ID)

	departments, err := svc.ListDepartments(ctx)
	require.NoError(t, err)
	require.Len(t, departments, 2)
	require.Equal(t, "Academic Support", departments[0].Name)
}

func TestCatalogDownloadResource(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewCatalogService(store)
	ctx := context.Background()

	require.NoError(t, svc.SeedSampleData(ctx))

	before, err := svc.ListResources(ctx)
	require.NoError(t, err)

	updated, err := svc.DownloadResource(ctx, "res-1")
	require.NoError(t, err)
	require.Equal(t, before[0].Downloads+1, updated.Downloads)

	_, err = svc.DownloadResource(ctx, "res-999")
	requireStatus(t, err, http.StatusNotFound)
}

func TestCatalogAnnouncements_SortedAndCapped(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewCatalogService(store)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		announcement := domain.Announcement{
			ID:        "ann-" + string(rune('a'+i)),
			Title:     "Notice",
			Message:   "m",
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.Set(ctx, kv.AnnouncementKey(announcement.ID), announcement))
	}

	announcements, err := svc.ListAnnouncements(ctx)
	require.NoError(t, err)
	require.Len(t, announcements, 10)
	for i := 1; i < len(announcements); i++ {
		require.False(t, announcements[i].Timestamp.After(announcements[i-1].Timestamp))
	}
}
