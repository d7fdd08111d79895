package api

import (
	"encoding/json"
	"net/url"
	"strconv"
)

// queryDocument turns a query string into a JSON object for schema
// validation. Integer keys are converted when they parse, boolean keys when
// they read true or false. Anything else stays a string so the schema
// reports it.
func queryDocument(q url.Values, intKeys, boolKeys []string) ([]byte, error) {
	doc := make(map[string]any, len(q))
	for k := range q {
		doc[k] = q.Get(k)
	}
	for _, k := range intKeys {
		if s, ok := doc[k].(string); ok {
			if n, err := strconv.Atoi(s); err == nil {
				doc[k] = n
			}
		}
	}
	for _, k := range boolKeys {
		if s, ok := doc[k].(string); ok {
			switch s {
			case "true":
				doc[k] = true
			case "false":
				doc[k] = false
			}
		}
	}
	return json.Marshal(doc)
}
