package beadgrid

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/bodgit/beadgrid/color"
	"github.com/bodgit/beadgrid/palette"
	"github.com/bodgit/beadgrid/project"
	_ "github.com/mattn/go-sqlite3"
)

var errNoLibrary = errors.New("no library imported for brand")

// ProjectDB stores bead brand libraries and saved projects.
type ProjectDB struct {
	db *sql.DB
}

// NewProjectDB opens or creates the database in file.
func NewProjectDB(file string) (*ProjectDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS library (id INTEGER PRIMARY KEY NOT NULL, brand TEXT NOT NULL UNIQUE, name TEXT NOT NULL)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS color (library_id INTEGER NOT NULL, position INTEGER NOT NULL, color_id TEXT NOT NULL, name TEXT NOT NULL, code TEXT NOT NULL, hex TEXT NOT NULL, r INTEGER NOT NULL, g INTEGER NOT NULL, b INTEGER NOT NULL, UNIQUE(library_id, color_id), FOREIGN KEY(library_id) REFERENCES library(id) ON DELETE CASCADE)"); err != nil {
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS project (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, checksum TEXT, bundle BLOB NOT NULL)"); err != nil {
		return nil, err
	}

	return &ProjectDB{
		db: db,
	}, nil
}

// Close closes the database.
func (db *ProjectDB) Close() error {
	return db.db.Close()
}

// ImportLibrary replaces the library of a brand with the JSON library in
// file.
func (db *ProjectDB) ImportLibrary(file string) (*palette.Library, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := palette.ReadLibrary(f)
	if err != nil {
		return nil, err
	}

	tx, err := db.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM library WHERE brand = ?", l.Brand.String()); err != nil {
		return nil, err
	}

	result, err := tx.Exec("INSERT INTO library (brand, name) VALUES (?, ?)", l.Brand.String(), l.Name)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	for i, c := range l.Colors {
		if _, err = tx.Exec("INSERT INTO color (library_id, position, color_id, name, code, hex, r, g, b) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)", id, i, c.ID, c.Name, c.Code, c.Hex, c.RGB.R, c.RGB.G, c.RGB.B); err != nil {
			return nil, err
		}
	}

	return l, tx.Commit()
}

// FindLibrary returns the imported library of a brand.
func (db *ProjectDB) FindLibrary(brand palette.Brand) (*palette.Library, error) {
	var id int64
	var name string
	switch err := db.db.QueryRow("SELECT id, name FROM library WHERE brand = ?", brand.String()).Scan(&id, &name); err {
	case sql.ErrNoRows:
		return nil, fmt.Errorf("%w %s", errNoLibrary, brand)
	case nil:
	default:
		return nil, err
	}

	rows, err := db.db.Query("SELECT color_id, name, code, hex, r, g, b FROM color WHERE library_id = ? ORDER BY position", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	l := &palette.Library{
		Brand: brand,
		Name:  name,
	}
	for rows.Next() {
		var c palette.Color
		var r, g, b uint8
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Hex, &r, &g, &b); err != nil {
			return nil, err
		}
		c.RGB = color.RGB{R: r, G: g, B: b}
		l.Colors = append(l.Colors, c)
	}

	return l, rows.Err()
}

// Brands returns the brands with an imported library.
func (db *ProjectDB) Brands() ([]palette.Brand, error) {
	rows, err := db.db.Query("SELECT brand FROM library ORDER BY brand")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var brands []palette.Brand
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		b, err := palette.ParseBrand(s)
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

// SaveProject stores b, replacing any project with the same name. The
// checksum of the source image is optional, without one any existing
// checksum is kept so edited projects aren't pixelized again.
func (db *ProjectDB) SaveProject(b *project.Bundle, checksum string) error {
	data, err := b.MarshalBinary()
	if err != nil {
		return err
	}

	var crc sql.NullString
	if checksum != "" {
		crc.String, crc.Valid = checksum, true
	}

	if _, err := db.db.Exec("INSERT INTO project (name, checksum, bundle) VALUES (?, ?, ?) ON CONFLICT(name) DO UPDATE SET checksum = COALESCE(excluded.checksum, project.checksum), bundle = excluded.bundle", b.Name, crc, data); err != nil {
		return err
	}
	return nil
}

// FindProject returns the project with the given name, or nil if there
// isn't one.
func (db *ProjectDB) FindProject(name string) (*project.Bundle, error) {
	var data []byte
	switch err := db.db.QueryRow("SELECT bundle FROM project WHERE name = ?", name).Scan(&data); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		b := new(project.Bundle)
		if err := b.UnmarshalBinary(data); err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, err
	}
}

// FindProjectByChecksum returns the name of a project created from an image
// with the given checksum, or an empty string.
func (db *ProjectDB) FindProjectByChecksum(checksum string) (string, error) {
	var name string
	switch err := db.db.QueryRow("SELECT name FROM project WHERE checksum = ?", checksum).Scan(&name); err {
	case sql.ErrNoRows:
		return "", nil
	case nil:
		return name, nil
	default:
		return "", err
	}
}

// Projects returns the names of all projects.
func (db *ProjectDB) Projects() ([]string, error) {
	rows, err := db.db.Query("SELECT name FROM project ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}

// DeleteProject removes the project with the given name.
func (db *ProjectDB) DeleteProject(name string) error {
	_, err := db.db.Exec("DELETE FROM project WHERE name = ?", name)
	return err
}
