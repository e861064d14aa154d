package pagination

import "testing"

func TestWindow(t *testing.T) {
	items := make([]int, 0, 120)
	for i := 0; i < 120; i++ {
		items = append(items, i)
	}

	t.Run("defaults", func(t *testing.T) {
		resp := Window(items, PageRequest{})

		if resp.Page != 1 || resp.PageSize != 50 {
			t.Errorf("expected page=1 size=50, got page=%d size=%d", resp.Page, resp.PageSize)
		}
		if len(resp.Data) != 50 || resp.Data[0] != 0 {
			t.Errorf("expected the first 50 items, got %d starting at %v", len(resp.Data), resp.Data[0])
		}
		if resp.TotalItems != 120 || resp.TotalPages != 3 {
			t.Errorf("expected 120 items over 3 pages, got %d over %d", resp.TotalItems, resp.TotalPages)
		}
	})

	t.Run("middle_page", func(t *testing.T) {
		resp := Window(items, PageRequest{Page: 2, PageSize: 50})

		if len(resp.Data) != 50 || resp.Data[0] != 50 {
			t.Errorf("expected items 50-99, got %d starting at %v", len(resp.Data), resp.Data[0])
		}
	})

	t.Run("short_last_page", func(t *testing.T) {
		resp := Window(items, PageRequest{Page: 3, PageSize: 50})

		if len(resp.Data) != 20 || resp.Data[0] != 100 {
			t.Errorf("expected the trailing 20 items, got %d", len(resp.Data))
		}
	})

	t.Run("page_past_end", func(t *testing.T) {
		resp := Window(items, PageRequest{Page: 10, PageSize: 50})

		if len(resp.Data) != 0 {
			t.Errorf("expected an empty page, got %d items", len(resp.Data))
		}
		if resp.Data == nil {
			t.Error("expected an empty slice, not nil")
		}
	})

	t.Run("empty_input", func(t *testing.T) {
		resp := Window([]int{}, PageRequest{})

		if len(resp.Data) != 0 || resp.TotalItems != 0 || resp.TotalPages != 0 {
			t.Errorf("expected an empty response, got %+v", resp)
		}
	})
}
