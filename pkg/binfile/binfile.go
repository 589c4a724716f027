// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package binfile

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/roqoqo/roqoqo-go/pkg/roqoqo"
	"github.com/roqoqo/roqoqo-go/pkg/version"
	log "github.com/sirupsen/logrus"
)

// ============================================================================
// Binary File Format
// ============================================================================

// BINFILE_MAJOR_VERSION gives the major version of the binary file format.  No
// matter what version, we should always have the ROQOQOIR identifier first,
// followed by the header.  What follows after that, however, is determined by
// the major version.
const BINFILE_MAJOR_VERSION uint16 = 1

// BINFILE_MINOR_VERSION gives the minor version of the binary file format.  The
// expected interpretation is that older versions are compatible with newer
// ones, but not vice-versa.
const BINFILE_MINOR_VERSION uint16 = 0

// ROQOQOIR is used as the file identifier for binary file types.  This just
// helps us identify actual binary files from corrupted files.
var ROQOQOIR = [8]byte{'r', 'o', 'q', 'o', 'q', 'o', 'i', 'r'}

// File is the programmatic representation of an encoded file.
type File struct {
	// Header for the file
	Header Header
	// The value itself.
	Value version.Versioned
}

// Header provides a structured header for the binary file format.  In
// particular, it records the version of the library required to read the
// payload, along with the kind of value held and embedded (binary) metadata.
type Header struct {
	Identifier   [8]byte
	MajorVersion uint16
	MinorVersion uint16
	// Minimum library version able to read the payload.
	Required version.Version
	// Kind of value held in the payload.
	Kind     Kind
	MetaData []byte
}

// MarshalBinary converts the header into a sequence of bytes.  Observe that
// we don't use GobEncoding here to avoid being tied to that encoding scheme.
func (p *Header) MarshalBinary() ([]byte, error) {
	var buffer bytes.Buffer
	// Write identifier
	buffer.Write(p.Identifier[:])
	// Write format version
	buffer.Write(binary.BigEndian.AppendUint16(nil, p.MajorVersion))
	buffer.Write(binary.BigEndian.AppendUint16(nil, p.MinorVersion))
	// Write required version
	buffer.Write(binary.BigEndian.AppendUint32(nil, p.Required.Major))
	buffer.Write(binary.BigEndian.AppendUint32(nil, p.Required.Minor))
	buffer.Write(binary.BigEndian.AppendUint32(nil, p.Required.Patch))
	// Write kind
	buffer.Write(binary.BigEndian.AppendUint16(nil, uint16(p.Kind)))
	// Write metadata length, followed by metadata itself
	buffer.Write(binary.BigEndian.AppendUint32(nil, uint32(len(p.MetaData))))
	buffer.Write(p.MetaData)
	// Done
	return buffer.Bytes(), nil
}

// UnmarshalBinary initialises this header from a given set of data bytes.
// This should match exactly the encoding above.  Fields are checked in the
// order they are read, such that a foreign file is never mistaken for one
// written by a newer library.
func (p *Header) UnmarshalBinary(buffer *bytes.Buffer) error {
	var fixed [22]byte
	// Read identifier
	if _, err := io.ReadFull(buffer, p.Identifier[:]); err != nil {
		return errors.Wrap(err, "reading identifier")
	} else if p.Identifier != ROQOQOIR {
		return errors.New("not a roqoqo binary file")
	}
	// Read remainder of fixed-length portion
	if _, err := io.ReadFull(buffer, fixed[:]); err != nil {
		return errors.Wrap(err, "reading header")
	}
	//
	vbuf := fixed[:]
	p.MajorVersion = binary.BigEndian.Uint16(vbuf[0:2])
	p.MinorVersion = binary.BigEndian.Uint16(vbuf[2:4])
	p.Required.Major = binary.BigEndian.Uint32(vbuf[4:8])
	p.Required.Minor = binary.BigEndian.Uint32(vbuf[8:12])
	p.Required.Patch = binary.BigEndian.Uint32(vbuf[12:16])
	p.Kind = Kind(binary.BigEndian.Uint16(vbuf[16:18]))
	// Make space for the metadata
	metaLength := binary.BigEndian.Uint32(vbuf[18:22])
	if int64(metaLength) > int64(buffer.Len()) {
		return errors.Errorf("metadata length %d exceeds remaining %d bytes", metaLength, buffer.Len())
	}
	//
	p.MetaData = make([]byte, metaLength)
	// Read metadata itself
	if _, err := io.ReadFull(buffer, p.MetaData); err != nil {
		return errors.Wrap(err, "reading metadata")
	}
	// Done
	return nil
}

// IsCompatible determines whether a file with this header can be read by
// this version of the format.
func (p *Header) IsCompatible() bool {
	return p.Identifier == ROQOQOIR &&
		p.MajorVersion == BINFILE_MAJOR_VERSION &&
		p.MinorVersion <= BINFILE_MINOR_VERSION
}

// IsBinaryFile checks whether the given data file begins with the expected
// "roqoqoir" identifier.
func IsBinaryFile(data []byte) bool {
	var identifier [8]byte
	//
	if _, err := io.ReadFull(bytes.NewBuffer(data), identifier[:]); err != nil {
		return false
	}
	// Check whether header identified
	return identifier == ROQOQOIR
}

// ============================================================================
// Codec
// ============================================================================

// Codec encodes and decodes circuits, measurements and inputs on behalf of a
// given library version.  Values requiring a newer version than that of the
// codec are rejected, both when encoding and decoding.
type Codec struct {
	version version.Version
}

// NewCodec constructs a codec for a given library version.
func NewCodec(v version.Version) *Codec {
	return &Codec{v}
}

// DefaultCodec constructs a codec for the version of this library.
func DefaultCodec() *Codec {
	return NewCodec(version.Library())
}

// Version returns the library version on whose behalf this codec operates.
func (c *Codec) Version() version.Version {
	return c.version
}

// MarshalBinary encodes a value into a sequence of bytes.
func (c *Codec) MarshalBinary(value version.Versioned) ([]byte, error) {
	return c.MarshalBinaryWithMetaData(value, nil)
}

// MarshalBinaryWithMetaData encodes a value into a sequence of bytes, whose
// header carries the given metadata.
func (c *Codec) MarshalBinaryWithMetaData(value version.Versioned, metadata []byte) ([]byte, error) {
	header, err := c.header(value, metadata)
	if err != nil {
		return nil, err
	}
	// Marshal header
	headerBytes, err := header.MarshalBinary()
	if err != nil {
		return nil, err
	}
	//
	buffer := bytes.NewBuffer(headerBytes)
	// Encode payload
	if err := gob.NewEncoder(buffer).Encode(value); err != nil {
		return nil, &roqoqo.SerializationError{Msg: "encoding payload", Err: err, Encoding: true}
	}
	// Done
	return buffer.Bytes(), nil
}

// UnmarshalBinary decodes a value from a given set of data bytes, returning
// a pointer to it (e.g. *circuit.Circuit).
func (c *Codec) UnmarshalBinary(data []byte) (version.Versioned, error) {
	file, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	//
	return file.Value, nil
}

// Decode a file from a given set of data bytes, retaining its header.
func (c *Codec) Decode(data []byte) (*File, error) {
	var (
		file   File
		buffer = bytes.NewBuffer(data)
	)
	// Read header
	if err := file.Header.UnmarshalBinary(buffer); err != nil {
		return nil, &roqoqo.SerializationError{Msg: "malformed binary file", Err: err}
	} else if !file.Header.IsCompatible() {
		return nil, &roqoqo.SerializationError{Msg: fmt.Sprintf("incompatible binary file was v%d.%d, but expected v%d.%d",
			file.Header.MajorVersion, file.Header.MinorVersion, BINFILE_MAJOR_VERSION, BINFILE_MINOR_VERSION)}
	}
	//
	value, err := c.allocate(file.Header.Kind, file.Header.Required)
	if err != nil {
		return nil, err
	}
	// Decode payload
	if err := gob.NewDecoder(buffer).Decode(value); err != nil {
		return nil, &roqoqo.SerializationError{Msg: "decoding " + file.Header.Kind.String(), Err: err}
	}
	//
	if err := c.check(value); err != nil {
		return nil, err
	}
	//
	file.Value = value
	//
	return &file, nil
}

// Constructs the header for a given value, checking it can be read by this
// codec's version.
func (c *Codec) header(value version.Versioned, metadata []byte) (Header, error) {
	kind, err := KindOf(value)
	if err != nil {
		return Header{}, &roqoqo.SerializationError{Msg: "unsupported value", Err: err, Encoding: true}
	} else if err := c.check(value); err != nil {
		return Header{}, err
	}
	//
	return Header{ROQOQOIR, BINFILE_MAJOR_VERSION, BINFILE_MINOR_VERSION, value.MinimumSupportedVersion(), kind,
		metadata}, nil
}

// Allocates an empty value of a given kind, after checking that a payload
// requiring a given version can be read by this codec.
func (c *Codec) allocate(kind Kind, required version.Version) (version.Versioned, error) {
	if !kind.IsValid() {
		return nil, &roqoqo.SerializationError{Msg: kind.String() + " is not a known kind"}
	} else if !c.version.Supports(required) {
		log.Debugf("rejecting %s requiring v%s (codec v%s)", kind, required, c.version)
		return nil, &roqoqo.VersionMismatchError{Library: c.version, Required: required}
	}
	//
	log.Debugf("decoding %s requiring v%s (codec v%s)", kind, required, c.version)
	//
	return kind.empty(), nil
}

// Checks that a value can be read by this codec's version.
func (c *Codec) check(value version.Versioned) error {
	if required := value.MinimumSupportedVersion(); !c.version.Supports(required) {
		return &roqoqo.VersionMismatchError{Library: c.version, Required: required}
	}
	//
	return nil
}

// Unmarshal decodes bytes in either the binary or JSON form, returning a
// value of the expected type.
func Unmarshal[T version.Versioned](c *Codec, data []byte) (T, error) {
	var (
		empty T
		value version.Versioned
		err   error
	)
	//
	if IsBinaryFile(data) {
		value, err = c.UnmarshalBinary(data)
	} else {
		value, err = c.DecodeJSON(data)
	}
	//
	if err != nil {
		return empty, err
	} else if v, ok := value.(T); ok {
		return v, nil
	}
	//
	return empty, &roqoqo.SerializationError{Msg: fmt.Sprintf("expected %T, found %T", empty, value)}
}
