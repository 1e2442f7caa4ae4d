// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-draft-keeper/internal/logger"
)

type stubUI struct {
	err    error
	called bool
}

func (s *stubUI) Run(context.Context) error {
	s.called = true
	return s.err
}

func TestApp_Run(t *testing.T) {
	uiErr := errors.New("terminal gone")

	tests := []struct {
		name    string
		uiErr   error
		cancel  bool
		wantErr error
	}{
		{name: "clean quit"},
		{name: "ui failure", uiErr: uiErr, wantErr: uiErr},
		{name: "interrupted", uiErr: tea.ErrProgramKilled, cancel: true},
		{name: "killed without interrupt", uiErr: tea.ErrProgramKilled, wantErr: tea.ErrProgramKilled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &stubUI{err: tt.uiErr}
			app := NewApp(ui, logger.Nop())

			ctx, cancel := context.WithCancel(context.Background())
			if tt.cancel {
				cancel()
			}
			defer cancel()

			err := app.run(ctx)

			require.True(t, ui.called)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
