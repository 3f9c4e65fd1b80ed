package pyimports

import (
	"reflect"
	"testing"
)

func TestList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code string
		want []string
	}{
		{"empty", "", nil},
		{"plain import", "import os", []string{"os"}},
		{"dotted module", "import os.path", []string{"os.path"}},
		{"comma separated", "import os, sys, json", []string{"json", "os", "sys"}},
		{"alias stripped", "import numpy as np", []string{"numpy"}},
		{"from import", "from collections import OrderedDict", []string{"collections"}},
		{"from dotted", "from os.path import join", []string{"os.path"}},
		{
			"deduplicated and sorted",
			"import sys\nimport os\nfrom os import path\nimport sys",
			[]string{"os", "sys"},
		},
		{
			"directives and comments skipped",
			"%matplotlib inline\n!pip install pandas\n# import fake\nimport pandas",
			[]string{"pandas"},
		},
		{"indented import", "if True:\n    import math", []string{"math"}},
		{"not an import", "x = 1\nimporter = f()", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := List(tt.code)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("List(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
