package normalize

import "github.com/famomatic/ytscribe/internal/innertube"

// Page is one walked page of a paginated listing. Continuation is the
// opaque token for the next page; empty means the listing is exhausted.
// The walker does not deduplicate across pages.
type Page struct {
	Videos       []Video
	Continuation string
}

// WalkBrowse extracts the current page from a browse response. The first
// page of a listing and later pages place items at structurally different
// paths, so both are checked: appended continuation items win when the
// action is present at all (even with an empty item list), otherwise the
// initial section content is walked.
func WalkBrowse(resp *innertube.BrowseResponse) Page {
	if resp == nil {
		return Page{}
	}
	for _, action := range resp.OnResponseReceivedActions {
		if action.AppendContinuationItemsAction != nil {
			return walkItems(action.AppendContinuationItemsAction.ContinuationItems)
		}
	}
	return walkItems(initialItems(resp))
}

// initialItems locates the first-page item list: the playlist tab's
// sectioned list, or the channel videos tab's rich grid.
func initialItems(resp *innertube.BrowseResponse) []innertube.Item {
	if resp.Contents == nil || resp.Contents.TwoColumnBrowseResultsRenderer == nil {
		return nil
	}
	for _, tab := range resp.Contents.TwoColumnBrowseResultsRenderer.Tabs {
		if tab.TabRenderer == nil || tab.TabRenderer.Content == nil {
			continue
		}
		content := tab.TabRenderer.Content
		if grid := content.RichGridRenderer; grid != nil && len(grid.Contents) > 0 {
			return grid.Contents
		}
		if content.SectionListRenderer == nil {
			continue
		}
		for _, section := range content.SectionListRenderer.Contents {
			if section.ItemSectionRenderer == nil {
				continue
			}
			for _, sc := range section.ItemSectionRenderer.Contents {
				if sc.PlaylistVideoListRenderer != nil {
					return sc.PlaylistVideoListRenderer.Contents
				}
			}
		}
	}
	return nil
}

// WalkSearch extracts video records from a search response.
func WalkSearch(resp *innertube.SearchResponse) []Video {
	if resp == nil || resp.Contents == nil || resp.Contents.TwoColumnSearchResultsRenderer == nil {
		return nil
	}
	sl := resp.Contents.TwoColumnSearchResultsRenderer.PrimaryContents.SectionListRenderer
	if sl == nil {
		return nil
	}
	var videos []Video
	for _, section := range sl.Contents {
		if section.ItemSectionRenderer == nil {
			continue
		}
		for _, item := range section.ItemSectionRenderer.Contents {
			if v, ok := FromRenderer(renderer(item)); ok {
				videos = append(videos, v)
			}
		}
	}
	return videos
}

func walkItems(items []innertube.Item) Page {
	var page Page
	for _, item := range items {
		if item.ContinuationItemRenderer != nil {
			page.Continuation = item.ContinuationItemRenderer.ContinuationEndpoint.ContinuationCommand.Token
			continue
		}
		if v, ok := FromRenderer(renderer(item)); ok {
			page.Videos = append(page.Videos, v)
		}
	}
	return page
}
