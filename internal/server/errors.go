// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errMissingHTTPHandler = errors.New("http handler is not created")
	errMissingAddress     = errors.New("http listen address is empty")
)
