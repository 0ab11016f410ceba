package cli

import (
	"testing"

	"aboutctl/internal/tools"
)

func TestToolLine(t *testing.T) {
	cases := []struct {
		res  tools.Result
		want string
	}{
		{
			tools.Result{Name: "ExifTool", Path: "/usr/bin/exiftool", Version: "12.50", Status: tools.StatusAvailable},
			"- ExifTool: 12.50 (/usr/bin/exiftool)",
		},
		{
			tools.Result{Name: "Blank", Path: "/usr/bin/blank", Version: "", Status: tools.StatusAvailable},
			"- Blank: ? (/usr/bin/blank)",
		},
		{
			tools.Result{Name: "Broken", Path: "/usr/bin/broken", Status: tools.StatusError},
			"- Broken: found but version unavailable (/usr/bin/broken)",
		},
		{
			tools.Result{Name: "Missing", Status: tools.StatusNotFound},
			"- Missing: not found",
		},
	}
	for _, c := range cases {
		if got := toolLine(c.res); got != c.want {
			t.Fatalf("toolLine(%+v) = %q, want %q", c.res, got, c.want)
		}
	}
}
