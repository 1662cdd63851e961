package constants

import "time"

// *********************************************************************************************************************
// THESE ARE KEY TO GOOD RESPONSIVENESS WHEN SCROLLING LARGE LISTS (EXACT VALUES DETERMINED BY FEEL)

// ScrollThrottleInterval bounds how often scroll input recomputes the visible window.
// Deltas arriving faster than this are coalesced and applied on the next flush
var ScrollThrottleInterval = 16 * time.Millisecond

// MockLoadLatency simulates backend latency for paged mock data loads so the
// loading state is actually visible during development
var MockLoadLatency = 150 * time.Millisecond

// *********************************************************************************************************************

// ToastTimeout controls how long transient notifications stay on screen
var ToastTimeout = 3 * time.Second

// PageSize controls how many items each "load more" pulls from a store
const PageSize = 50

// TopBarHeight is the fixed height of the app's top bar in lines
const TopBarHeight = 2
