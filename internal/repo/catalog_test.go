package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soham999a/spaceship/internal/domain"
	"github.com/soham999a/spaceship/internal/repo"
)

// ---- embedded catalog -------------------------------------------------------

func TestNewCatalogRepo_LoadsEmbeddedData(t *testing.T) {
	r, err := repo.NewCatalogRepo()
	require.NoError(t, err)

	dests, err := r.Destinations(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, dests)
	for _, d := range dests {
		assert.NotEmpty(t, d.ID)
		assert.NotEmpty(t, d.Name)
	}

	vehicles, err := r.Vehicles(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, vehicles)
	for _, v := range vehicles {
		assert.NotEmpty(t, v.ID)
		assert.Positive(t, v.MaxSpeedKmh)
	}
}

func TestDestinationByID_Found(t *testing.T) {
	r, err := repo.NewCatalogRepo()
	require.NoError(t, err)

	dests, err := r.Destinations(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, dests)

	got, err := r.DestinationByID(context.Background(), dests[0].ID)
	require.NoError(t, err)
	assert.Equal(t, dests[0], got)
}

func TestDestinationByID_NotFound(t *testing.T) {
	r, err := repo.NewCatalogRepo()
	require.NoError(t, err)

	_, err = r.DestinationByID(context.Background(), "arrakis")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVehicleByID_NotFound(t *testing.T) {
	r, err := repo.NewCatalogRepo()
	require.NoError(t, err)

	_, err = r.VehicleByID(context.Background(), "ornithopter")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- MergeRemote ------------------------------------------------------------

func TestMergeRemote_AppendsAfterStatic(t *testing.T) {
	r, err := repo.NewCatalogRepo()
	require.NoError(t, err)
	ctx := context.Background()

	before, err := r.Destinations(ctx)
	require.NoError(t, err)

	remote := domain.Destination{ID: "exo-kepler-452b", Name: "Kepler-452b", Distance: 1402}
	require.NoError(t, r.MergeRemote(ctx, []domain.Destination{remote}))

	after, err := r.Destinations(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, "exo-kepler-452b", after[len(after)-1].ID)

	got, err := r.DestinationByID(ctx, "exo-kepler-452b")
	require.NoError(t, err)
	assert.Equal(t, remote, got)
}

func TestMergeRemote_StaticWinsOnIDClash(t *testing.T) {
	r, err := repo.NewCatalogRepo()
	require.NoError(t, err)
	ctx := context.Background()

	static, err := r.Destinations(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, static)

	shadow := domain.Destination{ID: static[0].ID, Name: "Impostor"}
	require.NoError(t, r.MergeRemote(ctx, []domain.Destination{shadow}))

	got, err := r.DestinationByID(ctx, static[0].ID)
	require.NoError(t, err)
	assert.Equal(t, static[0].Name, got.Name)

	all, err := r.Destinations(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(static))
}

func TestMergeRemote_ReplacesPreviousRemoteSet(t *testing.T) {
	r, err := repo.NewCatalogRepo()
	require.NoError(t, err)
	ctx := context.Background()

	static, err := r.Destinations(ctx)
	require.NoError(t, err)

	require.NoError(t, r.MergeRemote(ctx, []domain.Destination{
		{ID: "exo-a", Name: "A"},
		{ID: "exo-b", Name: "B"},
	}))
	require.NoError(t, r.MergeRemote(ctx, []domain.Destination{
		{ID: "exo-c", Name: "C"},
	}))

	all, err := r.Destinations(ctx)
	require.NoError(t, err)
	require.Len(t, all, len(static)+1)
	assert.Equal(t, "exo-c", all[len(all)-1].ID)

	_, err = r.DestinationByID(ctx, "exo-a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
