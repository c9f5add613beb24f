package catalog

// Definition describes one select statement.
type Definition struct {
	Name           string      `yaml:"name"`
	Select         []string    `yaml:"select"`
	From           string      `yaml:"from"`
	FromQuery      *QueryRef   `yaml:"from_query"`
	Joins          []Join      `yaml:"joins"`
	Where          []Predicate `yaml:"where"`
	GroupBy        []string    `yaml:"group_by"`
	Having         []string    `yaml:"having"`
	OrderBy        []string    `yaml:"order_by"`
	DefaultOrderBy []string    `yaml:"default_order_by"`
	Limit          int         `yaml:"limit"`
	Offset         int64       `yaml:"offset"`
}

// QueryRef points to an earlier definition used as a derived table.
type QueryRef struct {
	Query string `yaml:"query"`
	Alias string `yaml:"alias"`
}

// Join holds exactly one of Join, Inner, Left or Query. Kind and Lateral
// only apply to Query joins.
type Join struct {
	Join    string `yaml:"join"`
	Inner   string `yaml:"inner"`
	Left    string `yaml:"left"`
	Query   string `yaml:"query"`
	Alias   string `yaml:"alias"`
	Kind    string `yaml:"kind"`
	Lateral bool   `yaml:"lateral"`
}

// InClause renders "column in (query)".
type InClause struct {
	Column string `yaml:"column"`
	Query  string `yaml:"query"`
}

// Predicate holds exactly one fragment form. Groups are rendered as a
// nested, parenthesized spec.
type Predicate struct {
	Where    string      `yaml:"where"`
	And      string      `yaml:"and"`
	Or       string      `yaml:"or"`
	Append   string      `yaml:"append"`
	AndIn    *InClause   `yaml:"and_in"`
	OrIn     *InClause   `yaml:"or_in"`
	AndGroup []Predicate `yaml:"and_group"`
	OrGroup  []Predicate `yaml:"or_group"`
}

type file struct {
	Queries []Definition `yaml:"queries"`
}
