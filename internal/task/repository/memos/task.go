package memos

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"taskplanner/internal/model"
	"taskplanner/internal/task/repository"
	pkgLog "taskplanner/pkg/log"
)

// Metadata trailer keys. The repository writes these lines itself, so
// decoding them back is round-tripping its own format, not general parsing.
const (
	metaPriority  = "Priority:"
	metaDue       = "Due:"
	metaEstimate  = "Estimate:"
	metaScheduled = "Scheduled:"
)

const defaultListLimit = 100

var tagPattern = regexp.MustCompile(`#[\w/-]+`)

type implRepository struct {
	client          *Client
	memoBaseURL     string // e.g. "http://localhost:5230" for deep link generation
	taskTag         string
	defaultPriority int
	defaultEstimate int // minutes
	l               pkgLog.Logger
}

// New creates a new Memos-backed task repository. defaultPriority and
// defaultEstimate fill in tasks whose trailer omits those fields.
func New(client *Client, memoBaseURL, taskTag string, defaultPriority, defaultEstimate int, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client:          client,
		memoBaseURL:     memoBaseURL,
		taskTag:         taskTag,
		defaultPriority: defaultPriority,
		defaultEstimate: defaultEstimate,
		l:               l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	limit := opt.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	tag := opt.Tag
	if tag == "" {
		tag = strings.TrimPrefix(r.taskTag, "#")
	}

	memos, err := r.client.ListMemos(ctx, tag, limit, opt.Offset)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(memos))
	for _, m := range memos {
		t := r.memoToTask(&m)
		if t.Completed && !opt.IncludeCompleted {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (r *implRepository) SaveScheduledTime(ctx context.Context, task model.Task) error {
	if task.ScheduledTime == nil {
		return fmt.Errorf("task %s has no scheduled time to save", task.ID)
	}

	memo, err := r.client.GetMemo(ctx, memoUID(task))
	if err != nil {
		r.l.Errorf(ctx, "memos repository: failed to fetch memo for %s: %v", task.ID, err)
		return err
	}

	content := upsertMetaLine(memo.Content, metaScheduled, task.ScheduledTime.Format(time.RFC3339))

	if _, err := r.client.UpdateMemo(ctx, memoUID(task), UpdateMemoRequest{Content: content}); err != nil {
		r.l.Errorf(ctx, "memos repository: failed to persist scheduled time for %s: %v", task.ID, err)
		return err
	}
	return nil
}

// memoUID extracts the API path segment for a task.
// Name format is "memos/{uid}" from the Memos v1 API.
func memoUID(t model.Task) string {
	if t.UID != "" {
		return t.UID
	}
	parts := strings.SplitN(t.ID, "/", 2)
	if len(parts) == 2 {
		return parts[1]
	}
	return t.ID
}

// memoToTask converts a Memos API Memo object to the internal model.Task.
func (r *implRepository) memoToTask(m *Memo) model.Task {
	uid := m.UID
	if uid == "" && m.Name != "" {
		parts := strings.SplitN(m.Name, "/", 2)
		if len(parts) == 2 {
			uid = parts[1]
		}
	}

	memoURL := ""
	if uid != "" && r.memoBaseURL != "" {
		memoURL = fmt.Sprintf("%s/m/%s", r.memoBaseURL, uid)
	}

	t := model.Task{
		ID:           m.Name,
		UID:          uid,
		Priority:     r.defaultPriority,
		TimeEstimate: r.defaultEstimate,
		Tags:         tagPattern.FindAllString(m.Content, -1),
		MemoURL:      memoURL,
		CreateTime:   m.CreateTime,
		UpdateTime:   m.UpdateTime,
	}

	for i, line := range strings.Split(m.Content, "\n") {
		line = strings.TrimSpace(line)
		if i == 0 {
			t.Description, t.Completed = parseTitle(line)
			continue
		}
		switch {
		case strings.HasPrefix(line, metaPriority):
			if p, err := strconv.Atoi(metaValue(line, metaPriority)); err == nil && p >= 1 && p <= 5 {
				t.Priority = p
			}
		case strings.HasPrefix(line, metaDue):
			if d, err := time.Parse(time.RFC3339, metaValue(line, metaDue)); err == nil {
				t.Deadline = &d
			}
		case strings.HasPrefix(line, metaEstimate):
			v := strings.TrimSuffix(metaValue(line, metaEstimate), "m")
			if e, err := strconv.Atoi(v); err == nil && e > 0 {
				t.TimeEstimate = e
			}
		case strings.HasPrefix(line, metaScheduled):
			if s, err := time.Parse(time.RFC3339, metaValue(line, metaScheduled)); err == nil {
				t.ScheduledTime = &s
			}
		}
	}
	return t
}

// parseTitle strips the Markdown checkbox prefix and reports completion.
func parseTitle(line string) (title string, completed bool) {
	switch {
	case strings.HasPrefix(line, "- [x]"), strings.HasPrefix(line, "- [X]"):
		return strings.TrimSpace(line[5:]), true
	case strings.HasPrefix(line, "- [ ]"):
		return strings.TrimSpace(line[5:]), false
	default:
		return line, false
	}
}

func metaValue(line, key string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, key))
}

// upsertMetaLine replaces the trailer line with the given key, or appends it
// when absent. Existing content layout is preserved.
func upsertMetaLine(content, key, value string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), key) {
			lines[i] = fmt.Sprintf("%s %s", key, value)
			return strings.Join(lines, "\n")
		}
	}
	if !strings.HasSuffix(content, "\n") && content != "" {
		content += "\n"
	}
	return content + fmt.Sprintf("%s %s", key, value)
}
