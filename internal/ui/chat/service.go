// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"io"
)

// Service is the answering capability the widget needs.
// *api.Client satisfies it; tests substitute fakes.
type Service interface {
	// Chat answers a general question.
	Chat(ctx context.Context, message string) (string, error)

	// QueryDocument answers a question about the uploaded document.
	QueryDocument(ctx context.Context, message string) (string, error)

	// UploadDocument sends a document for indexing and returns the
	// service's acknowledgement message.
	UploadDocument(ctx context.Context, name string, r io.Reader) (string, error)

	// Suggestions returns follow-up suggestions for the given message.
	Suggestions(ctx context.Context, message string) ([]string, error)
}
