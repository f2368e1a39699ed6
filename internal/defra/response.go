package defra

import "fmt"

type graphQLError struct {
	Message string `json:"message"`
}

// Response is the decoded {data, errors} envelope of a GraphQL request.
type Response struct {
	Data   map[string]any `json:"data"`
	Errors []graphQLError `json:"errors"`
}

// Documents returns the result documents of a create mutation for the
// given typename, in the order the database returned them.
func (r *Response) Documents(typename string) ([]map[string]any, error) {
	raw, ok := r.Data["create_"+typename]
	if !ok {
		return nil, fmt.Errorf("response has no create_%s result", typename)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("create_%s result is not a list", typename)
	}

	docs := make([]map[string]any, 0, len(items))
	for _, item := range items {
		doc, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("create_%s result entry is not a document", typename)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Key returns the _key of the first document created by a create
// mutation for the given typename.
func (r *Response) Key(typename string) (string, error) {
	docs, err := r.Documents(typename)
	if err != nil {
		return "", err
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("create_%s returned no documents", typename)
	}
	key, ok := docs[0]["_key"].(string)
	if !ok || key == "" {
		return "", fmt.Errorf("create_%s document has no _key", typename)
	}
	return key, nil
}
