package model

import "time"

const (
	EstatusInactive int16 = 0
	EstatusActive   int16 = 1
)

// CatalogItem is the id+nombre projection returned by the "all" listings.
type CatalogItem struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
}

type Area struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre    string    `gorm:"type:text;not null" json:"nombre"`
	Estatus   int16     `gorm:"not null;default:1;index" json:"estatus"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Area) TableName() string { return "centros.areas" }

type Departamento struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre  string `gorm:"type:text;not null" json:"nombre"`
	Codigo  string `gorm:"type:text;not null;default:''" json:"codigo,omitempty"`
	Estatus int16  `gorm:"not null;default:1" json:"-"`
}

func (Departamento) TableName() string { return "centros.departamentos" }

type Municipio struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	DepartamentoID int64  `gorm:"not null;index" json:"departamento_id"`
	Nombre         string `gorm:"type:text;not null" json:"nombre"`
	Codigo         string `gorm:"type:text;not null;default:''" json:"codigo,omitempty"`
	Estatus        int16  `gorm:"not null;default:1" json:"-"`
}

func (Municipio) TableName() string { return "centros.municipios" }

type NivelEscolaridad struct {
	ID      int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre  string `gorm:"type:text;not null" json:"nombre"`
	Estatus int16  `gorm:"not null;default:1" json:"-"`
}

func (NivelEscolaridad) TableName() string { return "centros.niveles_escolaridad" }

type Centro struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Siglas         string    `gorm:"type:text;not null;default:''" json:"siglas"`
	Codigo         string    `gorm:"type:text;not null;default:''" json:"codigo"`
	Nombre         string    `gorm:"type:text;not null" json:"nombre"`
	Descripcion    string    `gorm:"type:text;not null;default:''" json:"descripcion"`
	DepartamentoID int64     `gorm:"not null;index" json:"departamento_id"`
	MunicipioID    int64     `gorm:"not null;index" json:"municipio_id"`
	Direccion      string    `gorm:"type:text;not null;default:''" json:"direccion"`
	Telefono       string    `gorm:"type:text;not null;default:''" json:"telefono"`
	Email          string    `gorm:"type:text;not null;default:''" json:"email"`
	NombreDirector string    `gorm:"type:text;not null;default:''" json:"nombre_director"`
	Estatus        int16     `gorm:"not null;default:1;index" json:"estatus"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	DepartamentoNombre string `gorm:"->;-:migration" json:"departamento_nombre,omitempty"`
	MunicipioNombre    string `gorm:"->;-:migration" json:"municipio_nombre,omitempty"`
}

func (Centro) TableName() string { return "centros.centros" }

// Person holds the columns instructors and students share.
type Person struct {
	CentroID        int64      `gorm:"not null;index" json:"centro_id"`
	DepartamentoID  *int64     `json:"departamento_id"`
	MunicipioID     *int64     `json:"municipio_id"`
	Identidad       string     `gorm:"type:text;not null" json:"identidad"`
	Nombre          string     `gorm:"type:text;not null" json:"nombre"`
	Apellido        string     `gorm:"type:text;not null" json:"apellido"`
	Sexo            string     `gorm:"type:text;not null;default:''" json:"sexo"`
	FechaNacimiento *time.Time `gorm:"type:date" json:"fecha_nacimiento"`
	Telefono        string     `gorm:"type:text;not null;default:''" json:"telefono"`
	Email           string     `gorm:"type:text;not null;default:''" json:"email"`
	Direccion       string     `gorm:"type:text;not null;default:''" json:"direccion"`
	Archivo         string     `gorm:"type:text;not null;default:''" json:"archivo"`
	Estatus         int16      `gorm:"not null;default:1;index" json:"estatus"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	CentroNombre string `gorm:"->;-:migration" json:"centro_nombre,omitempty"`
}

type Instructor struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Person
	Especialidad string `gorm:"type:text;not null;default:''" json:"especialidad"`
}

func (Instructor) TableName() string { return "centros.instructores" }

type Estudiante struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Person
	NivelEscolaridadID *int64 `json:"nivel_escolaridad_id"`
}

func (Estudiante) TableName() string { return "centros.estudiantes" }

type Curso struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CentroID      int64     `gorm:"not null;index" json:"centro_id"`
	AreaID        *int64    `gorm:"index" json:"area_id"`
	Codigo        string    `gorm:"type:text;not null;default:''" json:"codigo"`
	Nombre        string    `gorm:"type:text;not null" json:"nombre"`
	Descripcion   string    `gorm:"type:text;not null;default:''" json:"descripcion"`
	DuracionHoras int       `gorm:"not null;default:0" json:"duracion_horas"`
	Estatus       int16     `gorm:"not null;default:1;index" json:"estatus"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	CentroNombre string `gorm:"->;-:migration" json:"centro_nombre,omitempty"`
	AreaNombre   string `gorm:"->;-:migration" json:"area_nombre,omitempty"`
}

func (Curso) TableName() string { return "centros.cursos" }
