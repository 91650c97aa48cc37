package cli

import (
	"fmt"
	"io"
	"strconv"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

type writer interface {
	Write(v any) error
}

func newWriter(w io.Writer, format string) (writer, error) {
	switch format {
	case "text":
		return textWriter{w}, nil
	case "json":
		return jsonWriter{w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %q", format)
	}
}

type textWriter struct{ w io.Writer }

func (t textWriter) Write(v any) error {
	_, err := fmt.Fprintln(t.w, v)
	return err
}

// jsonWriter writes each value as a google.protobuf.Value in its JSON form,
// one per line. Integers which a JSON number cannot hold exactly are written
// as strings.
type jsonWriter struct{ w io.Writer }

// maxExactInt is the largest integer a float64 represents exactly.
const maxExactInt = 1 << 53

func (j jsonWriter) Write(v any) error {
	pv, err := structpb.NewValue(exact(v))
	if err != nil {
		return fmt.Errorf("failed to encode value %v: %w", v, err)
	}
	b, err := protojson.Marshal(pv)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = j.w.Write(b)
	return err
}

// exact converts integers outside of [-2^53, 2^53] to their decimal string,
// structpb would otherwise round them to the nearest float64.
func exact(v any) any {
	switch v := v.(type) {
	case int:
		return exact(int64(v))
	case int64:
		if v > maxExactInt || v < -maxExactInt {
			return strconv.FormatInt(v, 10)
		}
		return v
	case uint:
		return exact(uint64(v))
	case uint64:
		if v > maxExactInt {
			return strconv.FormatUint(v, 10)
		}
		return v
	case []any:
		values := make([]any, len(v))
		for i, e := range v {
			values[i] = exact(e)
		}
		return values
	default:
		return v
	}
}
