// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// every registry abort reason also carries a stable numeric code so
// that clients can match on it without parsing the message
package fault
