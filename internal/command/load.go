package command

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/svannberg/rig/internal/dev"
	"github.com/svannberg/rig/internal/model"
	"github.com/svannberg/rig/internal/vlist"
)

// LoadPageCmd fetches one page of items from a source after a simulated
// backend latency, resolving the list's pager with the epoch it was fired
// with. Stale epochs are discarded on arrival by the list itself.
func LoadPageCmd[T model.Item](key string, epoch int, src model.Source[T], offset, limit int, latency time.Duration) tea.Cmd {
	return func() tea.Msg {
		dev.Debug(fmt.Sprintf("cmd running to load %s page at offset %d", key, offset))
		time.Sleep(latency)
		items, err := src.Page(offset, limit)
		if err != nil {
			return vlist.LoadedMsg[T]{Key: key, Epoch: epoch, Err: err}
		}
		return vlist.LoadedMsg[T]{
			Key:     key,
			Epoch:   epoch,
			Items:   items,
			HasNext: offset+len(items) < src.Len(),
		}
	}
}
