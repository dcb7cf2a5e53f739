package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	portdomain "github.com/wavelog/waveport/internal/port/domain"
	portrepo "github.com/wavelog/waveport/internal/port/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (portdomain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&portdomain.Port{}); err != nil {
		t.Fatal(err)
	}

	node, _ := snowflake.NewNode(1)
	svc := New(Params{
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  portrepo.Provide(),
	})
	return svc, db
}

func TestEnsureAll_InsertsDistinctPorts(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	inserted, err := svc.EnsureAll(ctx, db, []portdomain.Port{
		{Name: "Rotterdam", Country: "Netherlands", ISO3: "NLD"},
		{Name: "Antwerp", Country: "Belgium", ISO3: "BEL"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, inserted)

	var count int64
	assert.NoError(t, db.Model(&portdomain.Port{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestEnsureAll_FirstISO3Wins(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	inserted, err := svc.EnsureAll(ctx, db, []portdomain.Port{
		{Name: "Rotterdam", Country: "Netherlands", ISO3: "NLD"},
		{Name: "Rotterdam", Country: "Netherlands", ISO3: "XXX"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, inserted)

	var port portdomain.Port
	assert.NoError(t, db.First(&port).Error)
	assert.Equal(t, "NLD", port.ISO3)
}

func TestEnsureAll_SkipsIncompleteCandidates(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	inserted, err := svc.EnsureAll(ctx, db, []portdomain.Port{
		{Name: "", Country: "Netherlands", ISO3: "NLD"},
		{Name: "Rotterdam", Country: "  ", ISO3: "NLD"},
		{Name: "Rotterdam", Country: "Netherlands", ISO3: ""},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestEnsureAll_RerunIsNoOp(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	candidates := []portdomain.Port{
		{Name: "Santos", Country: "Brazil", ISO3: "BRA"},
	}

	inserted, err := svc.EnsureAll(ctx, db, candidates)
	assert.NoError(t, err)
	assert.Equal(t, 1, inserted)

	inserted, err = svc.EnsureAll(ctx, db, candidates)
	assert.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestResolveID(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := svc.EnsureAll(ctx, db, []portdomain.Port{
		{Name: "Hamburg", Country: "Germany", ISO3: "DEU"},
	})
	assert.NoError(t, err)

	id, err := svc.ResolveID(ctx, db, "Hamburg", "Germany")
	assert.NoError(t, err)
	assert.NotZero(t, id)

	// Second resolve hits the cache and agrees.
	cached, err := svc.ResolveID(ctx, db, "Hamburg", "Germany")
	assert.NoError(t, err)
	assert.Equal(t, id, cached)

	missing, err := svc.ResolveID(ctx, db, "Atlantis", "Nowhere")
	assert.NoError(t, err)
	assert.Zero(t, missing)
}
