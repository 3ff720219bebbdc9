// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package protocol

import "github.com/orbs-network/membuffers/go"

type rawWriter struct {
	buf []byte
}

func (w *rawWriter) writeUint32(v uint32) {
	b := make([]byte, 4)
	membuffers.WriteUint32(b, v)
	w.buf = append(w.buf, b...)
}

func (w *rawWriter) writeUint64(v uint64) {
	b := make([]byte, 8)
	membuffers.WriteUint64(b, v)
	w.buf = append(w.buf, b...)
}

func (w *rawWriter) writeBytes(v []byte) {
	w.writeUint32(uint32(len(v)))
	w.buf = append(w.buf, v...)
}
