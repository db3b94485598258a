package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/localnerve/jam-build-catalog/internal/catalog"
	"github.com/localnerve/jam-build-catalog/internal/database"
	"github.com/localnerve/jam-build-catalog/internal/logger"
	"github.com/localnerve/jam-build-catalog/internal/testsupport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStoreOnServerDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()
	if !testsupport.DockerAvailable(ctx) {
		t.Skip("docker is not available")
	}

	opts := testsupport.OptionsFromEnv()
	opts.WithAuthorizer = false
	containers, err := testsupport.Start(ctx, opts, t.Logf)
	require.NoError(t, err)
	t.Cleanup(func() { containers.Terminate(context.Background(), t.Logf) })

	log := logger.Nop()
	db, err := database.Connect(containers.Config(), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.AutoMigrate(db))

	n, err := database.Seed(ctx, db, log)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	store := NewCatalogStore(db)
	svc := catalog.NewService(store, log)
	p := &catalog.Principal{ID: "alice", Role: catalog.RoleRegular}

	found, err := svc.Search(ctx, p, "json", "")
	require.NoError(t, err)
	require.NotEmpty(t, found)
	target := found[0]

	const workers = 25
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.UseComponent(ctx, p, target.ID, "json")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.GetComponent(ctx, target.ID)
	require.NoError(t, err)
	assert.Equal(t, target.UsageCount+workers, got.UsageCount)
	assert.Equal(t, target.QueryCount+workers, got.QueryCount)
	require.NotNil(t, got.LastUsed)
	assert.WithinDuration(t, time.Now(), *got.LastUsed, time.Minute)
}
