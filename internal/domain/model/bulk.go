package model

// BulkItem is the outcome for one customer of a bulk operation.
type BulkItem struct {
	ID  string
	Err error
}

// BulkResult lists per-customer outcomes in request order.
type BulkResult struct {
	Items []BulkItem
}

// Failed returns ids whose update did not go through.
func (r BulkResult) Failed() []string {
	var ids []string
	for _, item := range r.Items {
		if item.Err != nil {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
