package ipfix

import (
	"encoding/binary"
	"errors"
	"testing"
)

func buildMessage(sequenceNumber uint32, sets ...[]byte) []byte {
	total := 16
	for _, s := range sets {
		total += len(s)
	}
	buf := make([]byte, 16)
	binary.BigEndian.PutUint16(buf[0:2], 10)
	binary.BigEndian.PutUint16(buf[2:4], uint16(total))
	binary.BigEndian.PutUint32(buf[4:8], 1479840960)
	binary.BigEndian.PutUint32(buf[8:12], sequenceNumber)
	binary.BigEndian.PutUint32(buf[12:16], 0)
	for _, s := range sets {
		buf = append(buf, s...)
	}
	return buf
}

func TestParseMessageTemplateThenData(t *testing.T) {
	templateSet := buildSet(2, buildTemplateRecord(999, [][3]int{{8, 4, 0}, {12, 4, 0}, {4, 1, 0}}))
	record := append(append([]byte{172, 19, 219, 50}, []byte{10, 0, 0, 1}...), 17)
	dataSet := buildSet(999, record)

	msg := buildMessage(1, templateSet, dataSet)

	d := NewDecoder()
	reg := NewRegistry()
	out, err := d.ParseMessage(msg, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Sets) != 2 {
		t.Fatalf("expected 2 sets, got %d", len(out.Sets))
	}
	if len(out.Sets[0].Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(out.Sets[0].Templates))
	}
	if len(out.Sets[1].Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out.Sets[1].Records))
	}
	rec := out.Sets[1].Records[0]
	if rec.Values[Str("protocolIdentifier")].U8 != 17 {
		t.Fatalf("unexpected protocol: %+v", rec.Values[Str("protocolIdentifier")])
	}
}

func TestParseMessageDataSetBeforeTemplateIsUnknown(t *testing.T) {
	dataSet := buildSet(999, []byte{1, 2, 3, 4})
	msg := buildMessage(1, dataSet)

	d := NewDecoder()
	reg := NewRegistry()
	out, err := d.ParseMessage(msg, reg)
	if err != nil {
		t.Fatalf("unknown template is non-fatal for the message, got error: %v", err)
	}
	if len(out.Sets[0].Records) != 0 {
		t.Fatalf("expected no records for unresolved set")
	}
}

func TestParseMessageSharedTemplateThenData(t *testing.T) {
	d := NewDecoder()
	reg := NewSharedRegistry()

	templateSet := buildSet(2, buildTemplateRecord(500, [][3]int{{1, 4, 0}}))
	templateMsg := buildMessage(1, templateSet)
	if _, err := d.ParseMessageShared(templateMsg, reg); err != nil {
		t.Fatalf("unexpected error learning template: %v", err)
	}

	dataSet := buildSet(500, append(append([]byte{}, encodeU32(10)...), encodeU32(20)...))
	dataMsg := buildMessage(2, dataSet)

	out, err := d.ParseMessageShared(dataMsg, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Sets[0].Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out.Sets[0].Records))
	}
}

func TestParseMessageEnterpriseFieldsViaCustomDecoder(t *testing.T) {
	const pen = 35632 // nProbe-style enterprise number
	d := NewDecoder()
	d.AddCustomField(pen, 80, "L7_PROTO", BEInt)
	d.AddCustomField(pen, 81, "L7_PROTO_NAME", BEString)

	templateSet := buildSet(2, buildTemplateRecord(1000, [][3]int{{80, 1, pen}, {81, 0xFFFF, pen}}))
	record := append([]byte{7}, append([]byte{4}, []byte("http")...)...)
	dataSet := buildSet(1000, record)
	msg := buildMessage(1, templateSet, dataSet)

	reg := NewRegistry()
	out, err := d.ParseMessage(msg, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec := out.Sets[1].Records[0]
	proto := rec.Values[Str("L7_PROTO")]
	if proto.Kind != ValU8 || proto.U8 != 7 {
		t.Fatalf("unexpected L7_PROTO: %+v", proto)
	}
	name := rec.Values[Str("L7_PROTO_NAME")]
	if name.Kind != ValString || name.Str != "http" {
		t.Fatalf("unexpected L7_PROTO_NAME: %+v", name)
	}
}

func TestParseMessageBadHeaderIsFatal(t *testing.T) {
	d := NewDecoder()
	reg := NewRegistry()
	_, err := d.ParseMessage([]byte{0, 9, 0, 16, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, reg)
	if !errors.Is(err, ErrBadHeader) {
		t.Fatalf("expected ErrBadHeader, got %v", err)
	}
}

func encodeU32(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}
