package api

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"loomorro/goal-api/internal/layout"
	"loomorro/goal-api/internal/model"
)

func TestGoalCreateDefaults(t *testing.T) {
	a := newTestAPI(t)
	_, file, token := seedUser(t, a, "goals@example.com")

	w := doJSON(t, a, http.MethodPost, "/api/goals", token, map[string]any{
		"title":   "Learn Go",
		"file_id": file.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create goal = %d, body %s", w.Code, w.Body.String())
	}

	goal := decode[model.Goal](t, w)
	if goal.Status != "active" {
		t.Errorf("default status = %q, want active", goal.Status)
	}
	if goal.Priority != model.PriorityLow {
		t.Errorf("default priority = %d, want %d", goal.Priority, model.PriorityLow)
	}
	if goal.OrderIndex != 0 {
		t.Errorf("default order index = %d, want 0", goal.OrderIndex)
	}
	if goal.ParentID != nil {
		t.Error("goal created without a parent has one")
	}
}

func TestGoalCreateValidation(t *testing.T) {
	a := newTestAPI(t)
	user, file, token := seedUser(t, a, "goalbad@example.com")
	_, foreignFile, _ := seedUser(t, a, "foreign@example.com")
	parent := seedGoal(t, a, user.ID, file.ID, "parent", nil)

	missing := uint(9999)
	cases := []struct {
		name string
		body map[string]any
	}{
		{"no title", map[string]any{"file_id": file.ID}},
		{"no file", map[string]any{"title": "x"}},
		{"foreign file", map[string]any{"title": "x", "file_id": foreignFile.ID}},
		{"missing parent", map[string]any{"title": "x", "file_id": file.ID, "parent_id": missing}},
		{"bad status", map[string]any{"title": "x", "file_id": file.ID, "status": "someday"}},
		{"bad priority", map[string]any{"title": "x", "file_id": file.ID, "priority": 7}},
	}

	for _, c := range cases {
		w := doJSON(t, a, http.MethodPost, "/api/goals", token, c.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s = %d, want 400", c.name, w.Code)
		}
	}

	// Nesting under an owned parent works
	w := doJSON(t, a, http.MethodPost, "/api/goals", token, map[string]any{
		"title":     "child",
		"file_id":   file.ID,
		"parent_id": parent.ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("nested create = %d, body %s", w.Code, w.Body.String())
	}
}

func TestGoalListNewestFirstAndFiltered(t *testing.T) {
	a := newTestAPI(t)
	user, file, token := seedUser(t, a, "goallist@example.com")

	w := doJSON(t, a, http.MethodPost, "/api/files", token, map[string]string{"name": "Second"})
	second := decode[model.File](t, w)

	g1 := seedGoal(t, a, user.ID, file.ID, "first", nil)
	g2 := seedGoal(t, a, user.ID, file.ID, "second", nil)
	g3 := seedGoal(t, a, user.ID, second.ID, "elsewhere", nil)

	w = doJSON(t, a, http.MethodGet, "/api/goals", token, nil)
	goals := decode[[]model.Goal](t, w)
	if len(goals) != 3 {
		t.Fatalf("expected 3 goals, got %d", len(goals))
	}
	if goals[0].ID != g3.ID || goals[1].ID != g2.ID || goals[2].ID != g1.ID {
		t.Errorf("goals not newest first: %d, %d, %d", goals[0].ID, goals[1].ID, goals[2].ID)
	}

	w = doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/goals?file_id=%d", second.ID), token, nil)
	goals = decode[[]model.Goal](t, w)
	if len(goals) != 1 || goals[0].ID != g3.ID {
		t.Errorf("file filter returned %+v", goals)
	}

	w = doJSON(t, a, http.MethodGet, "/api/goals?file_id=abc", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad file_id = %d, want 400", w.Code)
	}
}

func TestGoalFetchScopedToOwner(t *testing.T) {
	a := newTestAPI(t)
	user, file, _ := seedUser(t, a, "owner@example.com")
	_, _, otherToken := seedUser(t, a, "nosy@example.com")
	goal := seedGoal(t, a, user.ID, file.ID, "private", nil)

	w := doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/goals/%d", goal.ID), otherToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-user fetch = %d, want 404", w.Code)
	}
}

func TestGoalEditPartial(t *testing.T) {
	a := newTestAPI(t)
	user, file, token := seedUser(t, a, "edit@example.com")

	goal := seedGoal(t, a, user.ID, file.ID, "before", nil)
	goal.Description = "keep me"
	if err := a.DB.Save(&goal).Error; err != nil {
		t.Fatal(err)
	}

	// Only status in the body, everything else must stay
	w := doJSON(t, a, http.MethodPut, fmt.Sprintf("/api/goals/%d", goal.ID), token, map[string]any{
		"status": "completed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("edit = %d, body %s", w.Code, w.Body.String())
	}

	got := decode[model.Goal](t, w)
	if got.Status != "completed" {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.Title != "before" || got.Description != "keep me" {
		t.Errorf("untouched fields changed: %+v", got)
	}

	// Explicitly clearing the description is still possible
	w = doJSON(t, a, http.MethodPut, fmt.Sprintf("/api/goals/%d", goal.ID), token, map[string]any{
		"description": "",
	})
	if got := decode[model.Goal](t, w); got.Description != "" {
		t.Errorf("description = %q, want empty", got.Description)
	}

	w = doJSON(t, a, http.MethodPut, fmt.Sprintf("/api/goals/%d", goal.ID), token, map[string]any{
		"status": "someday",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid status edit = %d, want 400", w.Code)
	}
}

func TestGoalDeleteCascadesSubtree(t *testing.T) {
	a := newTestAPI(t)
	user, file, token := seedUser(t, a, "cascade@example.com")

	root := seedGoal(t, a, user.ID, file.ID, "root", nil)
	child := seedGoal(t, a, user.ID, file.ID, "child", &root.ID)
	seedGoal(t, a, user.ID, file.ID, "grandchild", &child.ID)
	sibling := seedGoal(t, a, user.ID, file.ID, "sibling", nil)

	w := doJSON(t, a, http.MethodDelete, fmt.Sprintf("/api/goals/%d", root.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete = %d, body %s", w.Code, w.Body.String())
	}
	if got := decode[model.Goal](t, w); got.ID != root.ID {
		t.Errorf("delete echoed goal %d, want %d", got.ID, root.ID)
	}

	var count int64
	a.DB.Model(model.Goal{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected only the sibling to survive, got %d goals", count)
	}

	a.DB.Model(model.Goal{}).Where("id = ?", sibling.ID).Count(&count)
	if count != 1 {
		t.Error("sibling outside the subtree was deleted")
	}
}

func TestGoalTree(t *testing.T) {
	a := newTestAPI(t)
	user, file, token := seedUser(t, a, "tree@example.com")

	root := seedGoal(t, a, user.ID, file.ID, "root", nil)
	seedGoal(t, a, user.ID, file.ID, "child", &root.ID)

	w := doJSON(t, a, http.MethodGet, "/api/goals/tree", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("tree without file_id = %d, want 400", w.Code)
	}

	w = doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/goals/tree?file_id=%d", file.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("tree = %d, body %s", w.Code, w.Body.String())
	}

	resp := decode[struct {
		Nodes  []*layout.Node `json:"nodes"`
		Width  int            `json:"width"`
		Height int            `json:"height"`
	}](t, w)

	if len(resp.Nodes) != 1 {
		t.Fatalf("expected 1 root, got %d", len(resp.Nodes))
	}
	if resp.Nodes[0].ID != root.ID || len(resp.Nodes[0].Children) != 1 {
		t.Errorf("unexpected forest: %+v", resp.Nodes[0])
	}
	if resp.Width != 800 || resp.Height != 600 {
		t.Errorf("canvas = %dx%d, want 800x600", resp.Width, resp.Height)
	}
}

func TestGoalSVG(t *testing.T) {
	a := newTestAPI(t)
	user, file, token := seedUser(t, a, "svg@example.com")
	seedGoal(t, a, user.ID, file.ID, "Draw me", nil)

	w := doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/goals/svg?file_id=%d&theme=ocean", file.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("svg = %d, body %s", w.Code, w.Body.String())
	}

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
		t.Errorf("content type = %q", ct)
	}
	if body := w.Body.String(); !strings.Contains(body, ">Draw me</text>") {
		t.Error("node title missing from rendered SVG")
	}

	w = doJSON(t, a, http.MethodGet, fmt.Sprintf("/api/goals/svg?file_id=%d&selected=abc", file.ID), token, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad selected param = %d, want 400", w.Code)
	}
}
