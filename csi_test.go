package vt

import "testing"

func TestParseCSIBasicParams(t *testing.T) {
	cmd := ParseCSI([]byte("1;2H"))
	if cmd.Final != 'H' {
		t.Fatalf("final = %c", cmd.Final)
	}
	if len(cmd.Params) != 2 {
		t.Fatalf("params = %+v", cmd.Params)
	}
	if cmd.Get(0, -1) != 1 || cmd.Get(1, -1) != 2 {
		t.Fatalf("params = %+v", cmd.Params)
	}
}

func TestParseCSIAbsentParamUsesDefault(t *testing.T) {
	cmd := ParseCSI([]byte("H"))
	if cmd.Get(0, 1) != 1 {
		t.Fatalf("expected default 1, got %d", cmd.Get(0, 1))
	}
}

func TestParseCSIEmptyParamPosition(t *testing.T) {
	cmd := ParseCSI([]byte(";5H"))
	if len(cmd.Params) != 2 {
		t.Fatalf("params = %+v", cmd.Params)
	}
	if cmd.Params[0].Set {
		t.Fatalf("expected param 0 unset, got %+v", cmd.Params[0])
	}
	if cmd.Get(1, -1) != 5 {
		t.Fatalf("param 1 = %+v", cmd.Params[1])
	}
}

func TestParseCSIPrivatePrefix(t *testing.T) {
	cmd := ParseCSI([]byte("?1049h"))
	if cmd.Prefix != '?' {
		t.Fatalf("prefix = %c", cmd.Prefix)
	}
	if cmd.Final != 'h' {
		t.Fatalf("final = %c", cmd.Final)
	}
	if cmd.Get(0, -1) != 1049 {
		t.Fatalf("param = %+v", cmd.Params)
	}
}

func TestParseCSIIntermediateBytes(t *testing.T) {
	cmd := ParseCSI([]byte("8 q"))
	if cmd.Final != 'q' {
		t.Fatalf("final = %c", cmd.Final)
	}
	if len(cmd.Intermediates) != 1 || cmd.Intermediates[0] != ' ' {
		t.Fatalf("intermediates = %v", cmd.Intermediates)
	}
	if cmd.Get(0, -1) != 8 {
		t.Fatalf("param = %+v", cmd.Params)
	}
}

func TestParseCSISGRMultiParam(t *testing.T) {
	cmd := ParseCSI([]byte("38;5;196m"))
	if cmd.Final != 'm' {
		t.Fatalf("final = %c", cmd.Final)
	}
	want := []int{38, 5, 196}
	if len(cmd.Params) != len(want) {
		t.Fatalf("params = %+v", cmd.Params)
	}
	for i, w := range want {
		if cmd.Get(i, -1) != w {
			t.Fatalf("param[%d] = %+v, want %d", i, cmd.Params[i], w)
		}
	}
}
