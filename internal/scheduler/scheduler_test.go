package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"autoblog/config"
)

type countingShipper struct {
	calls int
	err   error
}

func (s *countingShipper) ShipLogs(ctx context.Context) error {
	s.calls++
	return s.err
}

func TestNewCronParser(t *testing.T) {
	p := NewCronParser()
	for _, spec := range []string{"*/30 * * * * *", "0 * * * *", "@every 1m", "@hourly"} {
		_, err := p.Parse(spec)
		assert.NoError(t, err, spec)
	}
	_, err := p.Parse("not a schedule")
	assert.Error(t, err)
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Shipping: config.ShippingConfig{Schedule: "every now and then"}}

	c, err := NewScheduler(lc, cfg, &countingShipper{})
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestNewScheduler_RegistersJob(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Shipping: config.ShippingConfig{Schedule: "@every 1h"}}

	c, err := NewScheduler(lc, cfg, &countingShipper{})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)

	lc.RequireStart()
	lc.RequireStop()
}

func TestShipJob_SwallowsErrors(t *testing.T) {
	shipper := &countingShipper{err: errors.New("kafka down")}
	job := shipJob(shipper)

	assert.NotPanics(t, job)
	assert.Equal(t, 1, shipper.calls)
}
