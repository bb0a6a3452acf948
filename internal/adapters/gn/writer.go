// Package gn renders the generated GN file listing the libc++ headers.
package gn

import (
	"fmt"
	"strings"

	"github.com/gsource-mirror/chromium-src-buildtools/internal/adapters/fs"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/domain"
	"github.com/gsource-mirror/chromium-src-buildtools/internal/core/ports"
	"go.trai.ch/zerr"
)

// RegenerateCommand is the command line users are told to run.
const RegenerateCommand = "buildtools generate-libcxx-headers"

const header = `# Copyright 2025 The Chromium Authors
# Use of this source code is governed by a BSD-style license that can be
# found in the LICENSE file.

# DO NOT EDIT. This file is generated.
# This file should automatically be generated as a gclient hook.
# To manually regenerate, run:
# ` + RegenerateCommand + `
`

const revisionCheck = `
import("//buildtools/deps_revisions.gni")

# Enconding newlines is a pain.
# See https://gn.googlesource.com/gn/+/refs/heads/main/docs/language.md#Strings
assert(libcxx_revision == "%s", "%s")
`

const outOfDateMessage = "Your libcxx_headers.gni is out of date.\n" +
	"\n" +
	"If you synced without running hooks, run `gclient sync`\n" +
	"\n" +
	"If you were messing around with the libc++ repository, run:\n" +
	"`" + RegenerateCommand + "`\n" +
	"\n" +
	"In any other scenario, this *should not* happen. You can temporarily solve the\n" +
	"problem by running the above command, but please file a bug and assign it to\n" +
	"msta@ with reproduction details."

// Writer implements ports.FragmentWriter.
type Writer struct{}

var _ ports.FragmentWriter = (*Writer)(nil)

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Render produces the GN file. The revision assertion is emitted only when the fragment carries
// a revision.
func (w *Writer) Render(fragment domain.HeaderFragment) ([]byte, error) {
	var b strings.Builder

	b.WriteString(header)
	if rev, ok := fragment.Revision.Get(); ok {
		if strings.ContainsAny(rev, "\"$\\\n") {
			return nil, zerr.With(zerr.New("revision cannot be embedded in a GN string"), "revision", rev)
		}
		fmt.Fprintf(&b, revisionCheck, rev, EncodeString(outOfDateMessage))
	}

	lines := make([]string, 0, len(fragment.Headers))
	for _, hdr := range fragment.Headers {
		lines = append(lines, fmt.Sprintf(`  "%s/%s",`, fragment.VirtualRoot, hdr))
	}

	b.WriteString("\nlibcxx_headers = [\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n]\n")

	return []byte(b.String()), nil
}

// Write replaces the file at path with data.
func (w *Writer) Write(path string, data []byte) error {
	if err := fs.WriteFileAtomic(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrGeneratedFileWriteFailed.Error()), "path", path)
	}
	return nil
}

// EncodeString puts a multi-line message on one line, using GN's $0x0A escape for newlines.
func EncodeString(s string) string {
	return strings.ReplaceAll(s, "\n", "$0x0A")
}
