package domain

// Task is a unit of work as the web client stores it.
type Task struct {
	ID          string   `json:"id,omitempty" mapstructure:"id"`
	Name        string   `json:"name" mapstructure:"name"`
	Description string   `json:"description,omitempty" mapstructure:"description"`
	Effort      int      `json:"effort,omitempty" mapstructure:"effort"`
	Impact      int      `json:"impact,omitempty" mapstructure:"impact"`
	DueDate     string   `json:"due_date,omitempty" mapstructure:"due_date"`
	Completed   bool     `json:"completed" mapstructure:"completed"`
	GoalID      string   `json:"goal_id,omitempty" mapstructure:"goal_id"`
	Tags        []string `json:"tags,omitempty" mapstructure:"tags"`
}

// Goal is a high level objective with its completion percentage.
type Goal struct {
	ID          string `json:"id,omitempty" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description,omitempty" mapstructure:"description"`
	Progress    int    `json:"progress" mapstructure:"progress"`
}

// AppContext is the snapshot of the user's workspace sent along with
// assistant queries.
type AppContext struct {
	CurrentView string `json:"currentView" mapstructure:"currentView"`
	Tasks       []Task `json:"tasks" mapstructure:"tasks"`
	Goals       []Goal `json:"goals" mapstructure:"goals"`
}

// Views the assistant may suggest navigating to.
var AssistantViews = []string{
	"dashboard",
	"goals",
	"weekly",
	"schedule",
	"financials",
	"personalDevelopment",
	"analytics",
	"agents",
}
