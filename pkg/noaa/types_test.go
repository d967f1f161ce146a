package noaa

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	table := []struct {
		input string
		want  Sample
	}{{
		input: `{"t":"2020-10-20 02:17", "v":"1.243"}`,
		want: Sample{
			Time:   Time(time.Date(2020, time.October, 20, 2, 17, 0, 0, time.Local)),
			Height: 1.243,
		},
	}, {
		// Water level rows carry sigma and quality fields; they decode
		// the same way with the extras dropped.
		input: `{"t":"2019-09-21 06:56", "v":"0.780", "s":"0.012", "f":"0,0,0,0", "q":"v"}`,
		want: Sample{
			Time:   Time(time.Date(2019, time.September, 21, 6, 56, 0, 0, time.Local)),
			Height: 0.78,
		},
	}}

	for _, test := range table {
		t.Run(test.input, func(t *testing.T) {
			var got Sample

			dec := json.NewDecoder(bytes.NewBufferString(test.input))
			if err := dec.Decode(&got); err != nil {
				t.Errorf("unexpected error: %+v", err)
			}

			gotstr := fmt.Sprintf("%s", got)
			wantstr := fmt.Sprintf("%s", test.want)
			if diff := cmp.Diff(gotstr, wantstr); diff != "" {
				t.Errorf("incorrect parse (-got,+want): %s", diff)
			}
		})
	}
}

func TestParseSampleErrors(t *testing.T) {
	table := []struct {
		name  string
		input string
	}{{
		name:  "wrong time layout",
		input: `{"t":"20-10-2020 02:17", "v":"1.243"}`,
	}, {
		name:  "height not a number",
		input: `{"t":"2020-10-20 02:17", "v":"high"}`,
	}, {
		name:  "time not a string",
		input: `{"t":42, "v":"1.243"}`,
	}, {
		name:  "height not a string",
		input: `{"t":"2020-10-20 02:17", "v":1.243}`,
	}}

	for _, test := range table {
		t.Run(test.name, func(t *testing.T) {
			var got Sample
			if err := json.Unmarshal([]byte(test.input), &got); err == nil {
				t.Errorf("decoding %s succeeded, want error", test.input)
			}
		})
	}
}
