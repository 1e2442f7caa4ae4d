// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/internal/mock"
)

func TestNewDraftJanitor_DefaultInterval(t *testing.T) {
	j := NewDraftJanitor(nil, config.ServerWorkers{DraftTTL: time.Hour}, logger.Nop())

	assert.Equal(t, defaultJanitorInterval, j.interval)
	assert.Equal(t, time.Hour, j.ttl)
}

func TestDraftJanitor_Sweep(t *testing.T) {
	tests := []struct {
		name    string
		purged  int
		err     error
		want    int
		wantErr bool
	}{
		{name: "nothing stale", purged: 0, want: 0},
		{name: "stale drafts removed", purged: 3, want: 3},
		{name: "purge fails", err: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			drafts := mock.NewMockDraftService(ctrl)
			drafts.EXPECT().PurgeStaleDrafts(gomock.Any(), 30*time.Minute).Return(tt.purged, tt.err)

			j := NewDraftJanitor(drafts, config.ServerWorkers{DraftTTL: 30 * time.Minute}, logger.Nop())
			got, err := j.Sweep(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDraftJanitor_RunSweepsUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	drafts := mock.NewMockDraftService(ctrl)

	swept := make(chan struct{}, 8)
	drafts.EXPECT().PurgeStaleDrafts(gomock.Any(), time.Hour).
		DoAndReturn(func(context.Context, time.Duration) (int, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(2)

	j := NewDraftJanitor(drafts, config.ServerWorkers{DraftTTL: time.Hour, JanitorInterval: 10 * time.Millisecond}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Run(ctx)
		close(done)
	}()

	for range 2 {
		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("janitor did not sweep")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
