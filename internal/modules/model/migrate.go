package model

// All lists every table the service owns, in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&UserLog{},
		&FinancingSource{},
		&Project{},
		&ProjectLog{},
		&ProjectFinancingSource{},
		&ProjectDonation{},
		&ProjectExpense{},
		&ProjectFile{},
		&ProjectUser{},
		&Area{},
		&Departamento{},
		&Municipio{},
		&NivelEscolaridad{},
		&Centro{},
		&Instructor{},
		&Estudiante{},
		&Curso{},
	}
}

// Indexes that gorm tags cannot express.
var ExtraIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_estudiantes_identidad_centro ON centros.estudiantes (lower(identidad), centro_id) WHERE estatus = 1`,
	`CREATE INDEX IF NOT EXISTS idx_users_email_lower ON caderh.users (lower(email))`,
}
