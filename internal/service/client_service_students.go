// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-draft-keeper/internal/adapter"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/models"
)

type clientStudentListService struct {
	gateway   adapter.DocumentGateway
	entitySet string
	logger    *logger.Logger

	mu    sync.RWMutex
	query models.StudentQuery
	rows  []models.Student
}

func NewClientStudentListService(gateway adapter.DocumentGateway, entitySet string, logger *logger.Logger) ClientStudentListService {
	return &clientStudentListService{gateway: gateway, entitySet: entitySet, logger: logger}
}

func (l *clientStudentListService) SetQuery(q models.StudentQuery) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.query = q
}

func (l *clientStudentListService) Query() models.StudentQuery {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.query
}

func (l *clientStudentListService) Rows() []models.Student {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Student, len(l.rows))
	for i, row := range l.rows {
		out[i] = row.Clone()
	}
	return out
}

func (l *clientStudentListService) Refresh(ctx context.Context) error {
	q := l.Query()

	rows, err := l.gateway.ReadCollection(ctx, l.entitySet, q)
	if err != nil {
		return fmt.Errorf("read students: %w", err)
	}

	l.mu.Lock()
	l.rows = rows
	l.mu.Unlock()

	l.logger.Debug().Str("func", "clientStudentListService.Refresh").Int("rows", len(rows)).Msg("list refreshed")
	return nil
}
