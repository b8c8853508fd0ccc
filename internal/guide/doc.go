// Package guide holds the educational content and the per-view state of the
// DBMS guide: which section is open, which schema level is selected, which
// advantage card is expanded, and the in-memory student roster behind the
// schema vs. instance form.
//
// All state is owned by the view that uses it and lives only for the session.
package guide
