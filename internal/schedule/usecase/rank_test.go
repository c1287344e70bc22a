package usecase

import (
	"testing"
	"time"

	"taskplanner/internal/model"
)

func TestRankTasks(t *testing.T) {
	t.Run("Urgency Beats Priority", func(t *testing.T) {
		urgent := deadlineTask("urgent", 5, 30, testNow.Add(time.Hour))
		important := minutesTask("important", 1, 30)

		ranked := rankTasks([]model.Task{important, urgent}, testNow)
		if ranked[0].ID != "urgent" {
			t.Errorf("expected the urgent task first, got %s", ranked[0].ID)
		}
	})

	t.Run("Priority Ascending", func(t *testing.T) {
		ranked := rankTasks([]model.Task{
			minutesTask("p4", 4, 30),
			minutesTask("p1", 1, 30),
			minutesTask("p2", 2, 30),
		}, testNow)

		for i, want := range []string{"p1", "p2", "p4"} {
			if ranked[i].ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, ranked[i].ID)
			}
		}
	})

	t.Run("Earlier Deadline First", func(t *testing.T) {
		later := deadlineTask("later", 2, 30, testNow.Add(10*24*time.Hour))
		sooner := deadlineTask("sooner", 2, 30, testNow.Add(5*24*time.Hour))

		ranked := rankTasks([]model.Task{later, sooner}, testNow)
		if ranked[0].ID != "sooner" {
			t.Errorf("expected the sooner deadline first, got %s", ranked[0].ID)
		}
	})

	t.Run("Deadline Presence Before Absence", func(t *testing.T) {
		free := minutesTask("free", 2, 30)
		bound := deadlineTask("bound", 2, 30, testNow.Add(10*24*time.Hour))

		ranked := rankTasks([]model.Task{free, bound}, testNow)
		if ranked[0].ID != "bound" {
			t.Errorf("expected the deadline task first, got %s", ranked[0].ID)
		}
	})

	t.Run("Shorter Estimate First", func(t *testing.T) {
		long := minutesTask("long", 3, 120)
		short := minutesTask("short", 3, 30)

		ranked := rankTasks([]model.Task{long, short}, testNow)
		if ranked[0].ID != "short" {
			t.Errorf("expected the shorter task first, got %s", ranked[0].ID)
		}
	})

	t.Run("Stable For Full Ties", func(t *testing.T) {
		a := minutesTask("a", 3, 30)
		b := minutesTask("b", 3, 30)

		ranked := rankTasks([]model.Task{a, b}, testNow)
		if ranked[0].ID != "a" || ranked[1].ID != "b" {
			t.Error("fully tied tasks should keep their original order")
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		tasks := []model.Task{
			deadlineTask("d1", 1, 60, testNow.Add(30*time.Hour)),
			minutesTask("n1", 1, 45),
			deadlineTask("d2", 4, 30, testNow.Add(90*time.Hour)),
			minutesTask("n2", 5, 15),
		}

		once := rankTasks(tasks, testNow)
		twice := rankTasks(once, testNow)
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Fatalf("re-ranking changed order at %d: %s vs %s", i, once[i].ID, twice[i].ID)
			}
		}
	})

	t.Run("Input Not Modified", func(t *testing.T) {
		tasks := []model.Task{
			minutesTask("z", 5, 30),
			minutesTask("a", 1, 30),
		}

		rankTasks(tasks, testNow)
		if tasks[0].ID != "z" {
			t.Error("rankTasks mutated its input")
		}
	})
}
