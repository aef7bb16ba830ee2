/*
Copyright 2023 Alexander Bartolomey (github@alexanderbartolomey.de)

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package ipfix

import "encoding/binary"

// messageHeaderLength is the fixed size of an IPFIX message header.
const messageHeaderLength = 16

// ipfixVersion is the only protocol version this decoder accepts.
const ipfixVersion uint16 = 10

// MessageHeader is the 16-byte header prefixing every IPFIX message.
type MessageHeader struct {
	// Version is the IPFIX protocol version. Always 10 for a valid message.
	Version uint16 `json:"version" yaml:"version"`
	// Length is the total message length in bytes, header included.
	Length uint16 `json:"length" yaml:"length"`
	// ExportTime is the message export time, in seconds since the Unix epoch.
	ExportTime uint32 `json:"exportTime" yaml:"exportTime"`
	// SequenceNumber counts data records sent in this stream, modulo 2^32.
	SequenceNumber uint32 `json:"sequenceNumber" yaml:"sequenceNumber"`
	// DomainID identifies the observation domain this message belongs to.
	DomainID uint32 `json:"domainId" yaml:"domainId"`
}

// DecodeMessageHeader reads the 16-byte header from the front of buf and
// returns the remaining bytes. It fails if buf is shorter than the header,
// if the declared version is not 10, or if Length is smaller than the
// header itself or larger than len(buf).
func DecodeMessageHeader(buf []byte) (MessageHeader, []byte, error) {
	var h MessageHeader
	if len(buf) < messageHeaderLength {
		return h, nil, BadHeader(0)
	}
	h.Version = binary.BigEndian.Uint16(buf[0:2])
	if h.Version != ipfixVersion {
		return h, nil, BadHeader(h.Version)
	}
	h.Length = binary.BigEndian.Uint16(buf[2:4])
	h.ExportTime = binary.BigEndian.Uint32(buf[4:8])
	h.SequenceNumber = binary.BigEndian.Uint32(buf[8:12])
	h.DomainID = binary.BigEndian.Uint32(buf[12:16])

	if int(h.Length) < messageHeaderLength || int(h.Length) > len(buf) {
		return h, nil, BadHeader(h.Version)
	}
	return h, buf[messageHeaderLength:h.Length], nil
}
