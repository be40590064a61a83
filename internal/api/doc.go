// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the HTTP client for the remote answering service.
//
// The service exposes four calls: a general chat turn, a document upload,
// a query against the uploaded document, and a follow-up suggestion fetch.
// Each call has a single contractually required success field; a 2xx body
// missing that field is reported as ErrMalformedResponse rather than
// surfaced as a partial result.
package api
