package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	calendardomain "github.com/wavelog/waveport/internal/calendarday/domain"
	portdomain "github.com/wavelog/waveport/internal/port/domain"
	portrepo "github.com/wavelog/waveport/internal/port/repository"
	portservice "github.com/wavelog/waveport/internal/port/service"
	portcalldomain "github.com/wavelog/waveport/internal/portcall/domain"
	portcallrepo "github.com/wavelog/waveport/internal/portcall/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (portcalldomain.Service, portdomain.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&portdomain.Port{}, &portcalldomain.PortCall{}); err != nil {
		t.Fatal(err)
	}

	node, _ := snowflake.NewNode(1)
	log := zap.NewNop()

	portSvc := portservice.New(portservice.Params{
		Log:   log,
		GenID: node,
		Repo:  portrepo.Provide(),
	})
	svc := New(Params{
		Log:     log,
		GenID:   node,
		Repo:    portcallrepo.Provide(),
		PortSvc: portSvc,
	})
	return svc, portSvc, db
}

func TestEnsureAll_InsertsResolvedCandidates(t *testing.T) {
	svc, portSvc, db := newTestService(t)
	ctx := context.Background()

	_, err := portSvc.EnsureAll(ctx, db, []portdomain.Port{
		{Name: "Rotterdam", Country: "Netherlands", ISO3: "NLD"},
	})
	assert.NoError(t, err)

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.EnsureAll(ctx, db, []portcalldomain.Candidate{
		{
			PortName: "Rotterdam",
			Country:  "Netherlands",
			Date:     date,
			Metrics: map[string]float64{
				portcalldomain.MetricCallsTotal:  10,
				portcalldomain.MetricImportTotal: 100,
				portcalldomain.MetricExportTotal: 50,
			},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 0, result.SkippedExisting)
	assert.Equal(t, 0, result.SkippedUnresolved)

	var call portcalldomain.PortCall
	assert.NoError(t, db.First(&call).Error)
	assert.Equal(t, calendardomain.Truncate(date), calendardomain.Truncate(call.Date))
	assert.Equal(t, 10.0, call.CallsTotal)
	assert.Equal(t, 100.0, call.Metric(portcalldomain.MetricImportTotal))
	assert.Equal(t, 50.0, call.Metric(portcalldomain.MetricExportTotal))
	assert.Equal(t, 0.0, call.CallsRoRo)
}

func TestEnsureAll_FirstWriteWins(t *testing.T) {
	svc, portSvc, db := newTestService(t)
	ctx := context.Background()

	_, err := portSvc.EnsureAll(ctx, db, []portdomain.Port{
		{Name: "Santos", Country: "Brazil", ISO3: "BRA"},
	})
	assert.NoError(t, err)

	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	result, err := svc.EnsureAll(ctx, db, []portcalldomain.Candidate{
		{PortName: "Santos", Country: "Brazil", Date: date, Metrics: map[string]float64{
			portcalldomain.MetricCallsTotal: 5,
		}},
		{PortName: "Santos", Country: "Brazil", Date: date, Metrics: map[string]float64{
			portcalldomain.MetricCallsTotal: 99,
		}},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.SkippedExisting)

	var call portcalldomain.PortCall
	assert.NoError(t, db.First(&call).Error)
	assert.Equal(t, 5.0, call.CallsTotal)
}

func TestEnsureAll_SkipsUnresolvedPorts(t *testing.T) {
	svc, _, db := newTestService(t)
	ctx := context.Background()

	result, err := svc.EnsureAll(ctx, db, []portcalldomain.Candidate{
		{
			PortName: "Atlantis",
			Country:  "Nowhere",
			Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.SkippedUnresolved)

	var count int64
	assert.NoError(t, db.Model(&portcalldomain.PortCall{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEnsureAll_SkipsZeroDates(t *testing.T) {
	svc, portSvc, db := newTestService(t)
	ctx := context.Background()

	_, err := portSvc.EnsureAll(ctx, db, []portdomain.Port{
		{Name: "Hamburg", Country: "Germany", ISO3: "DEU"},
	})
	assert.NoError(t, err)

	result, err := svc.EnsureAll(ctx, db, []portcalldomain.Candidate{
		{PortName: "Hamburg", Country: "Germany"},
	})
	assert.NoError(t, err)
	assert.Equal(t, portcalldomain.Result{}, result)

	var count int64
	assert.NoError(t, db.Model(&portcalldomain.PortCall{}).Count(&count).Error)
	assert.Zero(t, count)
}
