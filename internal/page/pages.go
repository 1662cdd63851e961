package page

import (
	"github.com/svannberg/rig/internal/model"
	"github.com/svannberg/rig/internal/style"
)

func NewEventsPage(width, height int, styles style.Styles, src model.Source[model.Event], cfg ListConfig) GenericPage {
	return NewListPage(EventsPageType.String(), width, height, styles, src, cfg)
}

func NewInspectionsPage(width, height int, styles style.Styles, src model.Source[model.Inspection], cfg ListConfig) GenericPage {
	return NewListPage(InspectionsPageType.String(), width, height, styles, src, cfg)
}

func NewReportsPage(width, height int, styles style.Styles, src model.Source[model.Report], cfg ListConfig) GenericPage {
	return NewListPage(ReportsPageType.String(), width, height, styles, src, cfg)
}
