// Package roadmap implements roadmap feature management for the public
// kanban-style board.
//
// Unlike the other admin screens, mutations here reconcile an in-memory
// snapshot instead of refetching the whole list: the snapshot is updated to
// match the just-completed operation's stored result. Two admin sessions can
// therefore observe divergent views until the next Refresh.
package roadmap
