package directory

// Doctor and Specialty records are owned by the directory service;
// this app never mutates them.

type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Image     string `json:"image"`
}

type Specialty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the joined result of the initial bulk load.
type Catalog struct {
	Specialties []Specialty `json:"specialties"`
	Doctors     []Doctor    `json:"doctors"`
}
