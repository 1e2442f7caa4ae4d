// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash(t *testing.T) {
	data := []byte("test-data")
	want := sha256.Sum256(data)

	assert.Equal(t, want[:], Hash(data))
	assert.Equal(t, want[:], Hash(data), "pooled hasher is reset between calls")
}

func TestContentETag(t *testing.T) {
	sum := sha256.Sum256([]byte("%PDF"))

	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "content", data: []byte("%PDF"), want: `"` + hex.EncodeToString(sum[:]) + `"`},
		{name: "empty", data: nil, want: `"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentETag(tt.data))
		})
	}
}

func TestHash_Concurrent(t *testing.T) {
	data := []byte("shared")
	want := sha256.Sum256(data)

	var wg sync.WaitGroup
	for range 32 {
		wg.Go(func() {
			assert.Equal(t, want[:], Hash(data))
		})
	}
	wg.Wait()
}
