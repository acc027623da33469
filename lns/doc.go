// Package lns implements large-neighborhood-search re-optimization: a
// shared area-selection/local-MIP/replace loop specialized into a
// cycle-cover step (run before cycle connection) and a tour step (run
// after, with subtour elimination since re-optimizing a connected tour's
// interior can reintroduce disconnected pieces).
package lns
