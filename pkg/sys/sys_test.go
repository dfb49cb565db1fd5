package sys

import (
	"os"
	"testing"
)

func TestIsFileATTY_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if IsFileATTY(r) || IsFileATTY(w) {
		t.Errorf("pipe reported as a terminal")
	}
}

func TestIsFileATTY_Nil(t *testing.T) {
	if IsFileATTY(nil) {
		t.Errorf("IsFileATTY(nil) = true")
	}
}
