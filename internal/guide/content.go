package guide

const (
	Title    = "DBMS Fundamentals Visualizer"
	Subtitle = "An interactive guide to core database concepts."
	Footer   = "Built with Go, Bubble Tea and raylib."
)

// Example is the worked SQL illustration attached to a schema level.
type Example struct {
	Title       string
	Description string
	Code        string
}

// SchemaLevel is one tier of the three-schema architecture.
type SchemaLevel struct {
	ID          string
	Icon        string
	Title       string
	Subtitle    string
	Description string
	Color       string
	Example     Example
}

var SchemaLevels = []SchemaLevel{
	{
		ID:          "external",
		Icon:        "👥",
		Title:       "External Schema",
		Subtitle:    "User Views",
		Description: "This level describes the part of the database that a specific user group is interested in, hiding the rest. There can be multiple external schemas for a single database.",
		Color:       "#60a5fa",
		Example: Example{
			Title:       "Example: Instructor's View",
			Description: "An instructor might only need to see a student's ID and name for their class roster, not their major or other sensitive data.",
			Code: `CREATE VIEW InstructorRoster AS
SELECT ID, Name
FROM Students;`,
		},
	},
	{
		ID:          "conceptual",
		Icon:        "🗂",
		Title:       "Conceptual Schema",
		Subtitle:    "Logical Structure",
		Description: "Also known as the logical schema, this provides a unified view of the entire database. It describes entities, attributes, relationships, and constraints, without physical storage details.",
		Color:       "#c084fc",
		Example: Example{
			Title:       "Example: The Complete Blueprint",
			Description: `This is the foundational structure for the "Students" table, defining all its columns and their data types.`,
			Code: `CREATE TABLE Students (
  ID    INTEGER PRIMARY KEY,
  Name  VARCHAR(255),
  Major VARCHAR(255)
);`,
		},
	},
	{
		ID:          "internal",
		Icon:        "💾",
		Title:       "Internal Schema",
		Subtitle:    "Physical Storage",
		Description: "This level, also called the physical schema, defines how data is physically stored. It deals with file organization, data structures (e.g., B+ trees), and access paths to optimize performance.",
		Color:       "#4ade80",
		Example: Example{
			Title:       "Example: How Data is Stored",
			Description: "This defines the low-level details, such as creating an index on the primary key for faster searching.",
			Code: `-- The Students table data is stored in 'data/students.db'
-- An index is created on the ID column for fast lookups.
CREATE INDEX idx_student_id ON Students(ID);`,
		},
	},
}

const (
	SchemaHeading     = "Schema: The Blueprint"
	SchemaDescription = "The schema defines the structure of the database: the tables, columns, data types, and relationships. It's the blueprint that doesn't change often."
	SchemaDDL         = `CREATE TABLE Students (
  ID INTEGER PRIMARY KEY,
  Name VARCHAR(255),
  Major VARCHAR(255)
);`
	InstanceHeading     = "Instance: The Snapshot"
	InstanceDescription = "An instance is the actual data in the database at a specific moment in time. It's a snapshot of the data that conforms to the schema. It changes frequently as data is added, updated, or deleted."
	AdvantagesHeading   = "Advantages of DBMS"
	AdvantagesIntro     = "Compared to traditional file-based systems. Select a card to learn more."
)

// Advantage is one expandable card.
type Advantage struct {
	ID          int
	Title       string
	Icon        string
	Description string
}

var AdvantageList = []Advantage{
	{
		ID:          1,
		Title:       "Control of Data Redundancy",
		Icon:        "⧉",
		Description: "DBMS avoids duplication of data by storing it in a centralized repository. This saves storage space and prevents inconsistencies that arise when the same data is stored in multiple files.",
	},
	{
		ID:          2,
		Title:       "Enforcing Data Consistency",
		Icon:        "≡",
		Description: "By reducing redundancy, DBMS ensures that any changes to a data item are reflected throughout the system, maintaining a consistent state. If a student changes their address, it's updated only once.",
	},
	{
		ID:          3,
		Title:       "Improved Data Security",
		Icon:        "🔒",
		Description: "DBMS provides robust security mechanisms. Access to data can be restricted through user accounts, roles, and permissions, ensuring that only authorized users can view or modify sensitive information.",
	},
	{
		ID:          4,
		Title:       "Maintaining Data Integrity",
		Icon:        "✓",
		Description: "DBMS enforces integrity constraints (e.g., data types, primary keys, not-null constraints) to ensure the quality and accuracy of the data. For example, a GPA must be a number between 0.0 and 4.0.",
	},
	{
		ID:          5,
		Title:       "Managing Multi-User Access",
		Icon:        "⇄",
		Description: "DBMS uses concurrency control mechanisms to allow multiple users to access and modify the database simultaneously without interfering with each other, preventing issues like lost updates.",
	},
	{
		ID:          6,
		Title:       "Backup and Recovery",
		Icon:        "↺",
		Description: "Modern DBMS provides facilities for backing up data and recovering from system failures (e.g., hardware crashes, software errors). This protects data from being lost permanently.",
	},
}
