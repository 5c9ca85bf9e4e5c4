package restyutil

import (
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/go-resty/resty/v2"
)

// formatHeaders writes one "Key: Value" line per value with keys sorted,
// so dumps of the same exchange diff cleanly.
func formatHeaders(out *strings.Builder, headers http.Header) {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		for _, v := range headers[k] {
			fmt.Fprintf(out, "%s: %s\n", k, v)
		}
	}
}

func formatRequestBody(out *strings.Builder, req *http.Request) {
	if req == nil || req.GetBody == nil {
		return
	}
	body, err := req.GetBody()
	if err != nil {
		fmt.Fprintf(out, "\n(failed to get request body: %s)\n", err)
		return
	}
	contents, err := io.ReadAll(body)
	if err != nil {
		fmt.Fprintf(out, "\n(failed to read request body: %s)\n", err)
		return
	}
	out.WriteString("\n")
	out.Write(contents)
	out.WriteString("\n")
}

// formatHttpMessage renders a request/response pair as plain text.
func formatHttpMessage(res *resty.Response) string {
	var out strings.Builder

	out.WriteString("---- REQUEST ----\n\n")
	fmt.Fprintf(&out, "%s %s\n\n", res.Request.Method, res.Request.URL)
	if res.Request.RawRequest != nil {
		formatHeaders(&out, res.Request.RawRequest.Header)
		formatRequestBody(&out, res.Request.RawRequest)
	} else {
		formatHeaders(&out, res.Request.Header)
	}

	responseUrl := res.Request.URL
	if res.RawResponse != nil {
		redirected, err := res.RawResponse.Location()
		if err == nil {
			responseUrl = redirected.String()
		}
	}

	out.WriteString("\n---- RESPONSE ----\n\n")
	fmt.Fprintf(&out, "%d %s\n\n", res.StatusCode(), responseUrl)
	formatHeaders(&out, res.Header())
	out.WriteString("\n")
	out.WriteString(res.String())

	return out.String()
}
