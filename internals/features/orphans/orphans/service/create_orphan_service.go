// file: internals/features/orphans/orphans/service/create_orphan_service.go
package service

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	relativesModel "yatimku_backend/internals/features/orphans/relatives/model"

	"yatimku_backend/internals/features/orphans/orphans/dto"
	"yatimku_backend/internals/features/orphans/orphans/model"
)

type CreateOrphanResult struct {
	OrphanID      uint
	OrphanUID     uuid.UUID
	SiblingsAdded int
}

func hasName(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// CreateOrphanAggregate menjalankan seluruh workflow pembuatan anak asuh
// dalam SATU transaksi: father/mother/guardian/residence (opsional) → orphan →
// siblings. Semua atau tidak sama sekali; row yatim tanpa induk tidak boleh
// pernah kelihatan dari luar.
func CreateOrphanAggregate(db *gorm.DB, req *dto.CreateOrphanRequest) (*CreateOrphanResult, error) {
	// Ambil handle transaksi dedicated (bukan koneksi implisit per-statement
	// milik pool), karena step 2-7 harus jadi satu unit atomik.
	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	committed := false
	defer func() {
		// guaranteed release: rollback di semua exit path selain commit sukses,
		// termasuk panic di tengah jalan
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
		if !committed {
			tx.Rollback()
		}
	}()

	motherCustodian := req.MotherCustodian()

	// ---- Step 1: father (hanya kalau full_name terisi) ----
	var fatherID *uint
	if req.FatherData != nil && hasName(req.FatherData.FullName) {
		father := relativesModel.FatherModel{
			FatherUID:          uuid.New(),
			FatherFullName:     strings.TrimSpace(*req.FatherData.FullName),
			FatherDateOfDeath:  dto.ParseDate(req.FatherData.DateOfDeath),
			FatherCauseOfDeath: req.FatherData.CauseOfDeath,
			FatherOccupation:   req.FatherData.Occupation,
			FatherNotes:        req.FatherData.Notes,
		}
		if err := tx.Create(&father).Error; err != nil {
			log.Printf("[ERROR] gagal insert father: %v", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data ayah")
		}
		fatherID = &father.FatherID
	}

	// ---- Step 2: mother (hanya kalau full_name terisi) ----
	var motherID *uint
	if req.MotherData != nil && hasName(req.MotherData.FullName) {
		mother := relativesModel.MotherModel{
			MotherUID:             uuid.New(),
			MotherFullName:        strings.TrimSpace(*req.MotherData.FullName),
			MotherMaritalStatus:   relativesModel.DefaultMaritalStatus,
			MotherIsCustodian:     motherCustodian,
			MotherHealthCondition: req.MotherData.HealthCondition,
			MotherOccupation:      req.MotherData.Occupation,
			MotherPhone:           req.MotherData.Phone,
			MotherNotes:           req.MotherData.Notes,
		}
		if req.MotherData.MaritalStatus != nil {
			mother.MotherMaritalStatus = *req.MotherData.MaritalStatus
		}
		if req.MotherData.IsCustodian != nil {
			mother.MotherIsCustodian = *req.MotherData.IsCustodian
		}
		if err := tx.Create(&mother).Error; err != nil {
			log.Printf("[ERROR] gagal insert mother: %v", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data ibu")
		}
		motherID = &mother.MotherID
	}

	// ---- Step 3: guardian ----
	// Syaratnya dua-duanya: ibu BUKAN pengasuh DAN nama wali terisi.
	// Kalau ibu pengasuh, data wali diabaikan diam-diam walau dikirim.
	var guardianID *uint
	if !motherCustodian && req.GuardianData != nil && hasName(req.GuardianData.FullName) {
		guardian := relativesModel.GuardianModel{
			GuardianUID:          uuid.New(),
			GuardianFullName:     strings.TrimSpace(*req.GuardianData.FullName),
			GuardianRelationship: req.GuardianData.Relationship,
			GuardianPhone:        req.GuardianData.Phone,
			GuardianOccupation:   req.GuardianData.Occupation,
			GuardianNotes:        req.GuardianData.Notes,
		}
		if err := tx.Create(&guardian).Error; err != nil {
			log.Printf("[ERROR] gagal insert guardian: %v", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data wali")
		}
		guardianID = &guardian.GuardianID
	}

	// ---- Step 4: residence ----
	// Cukup objeknya ada (walau semua field kosong) → tetap dibuat dengan default.
	var residenceID *uint
	if req.ResidenceData != nil {
		residence := model.ResidenceInfoModel{
			ResidenceCountry:   model.DefaultResidenceCountry,
			ResidenceCondition: model.DefaultResidenceCondition,
			ResidenceCity:      req.ResidenceData.City,
			ResidenceDistrict:  req.ResidenceData.District,
			ResidenceAddress:   req.ResidenceData.Address,
			ResidenceOwnership: req.ResidenceData.Ownership,
		}
		if hasName(req.ResidenceData.Country) {
			residence.ResidenceCountry = *req.ResidenceData.Country
		}
		if hasName(req.ResidenceData.Condition) {
			residence.ResidenceCondition = *req.ResidenceData.Condition
		}
		if err := tx.Create(&residence).Error; err != nil {
			log.Printf("[ERROR] gagal insert residence: %v", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data tempat tinggal")
		}
		residenceID = &residence.ResidenceID
	}

	// ---- Step 5: orphan (merujuk id yang sudah di-resolve di atas) ----
	orphan := model.OrphanModel{
		OrphanUID:               uuid.New(),
		OrphanCode:              req.OrphanCode,
		OrphanFullName:          strings.TrimSpace(req.FullName),
		OrphanDateOfBirth:       dto.ParseDate(req.DateOfBirth),
		OrphanGender:            "male",
		OrphanNationality:       req.Nationality,
		OrphanHealthCondition:   model.DefaultHealthCondition,
		OrphanHealthNotes:       req.HealthNotes,
		OrphanIsStudying:        true,
		OrphanSchoolName:        req.SchoolName,
		OrphanGradeLevel:        req.GradeLevel,
		OrphanMemorizesQuran:    false,
		OrphanFatherID:          fatherID,
		OrphanMotherID:          motherID,
		OrphanGuardianID:        guardianID,
		OrphanResidenceID:       residenceID,
		OrphanMotherIsCustodian: motherCustodian,
		OrphanNotes:             req.Notes,
	}
	if req.Gender != nil {
		orphan.OrphanGender = *req.Gender
	}
	if req.HealthCondition != nil {
		orphan.OrphanHealthCondition = *req.HealthCondition
	}
	if req.IsStudying != nil {
		orphan.OrphanIsStudying = *req.IsStudying
	}
	if req.MemorizesQuran != nil {
		orphan.OrphanMemorizesQuran = *req.MemorizesQuran
	}
	if req.QuranPartsMemorized != nil {
		orphan.OrphanQuranPartsMemorized = *req.QuranPartsMemorized
	}
	if req.SiblingsCount != nil {
		orphan.OrphanSiblingsCount = *req.SiblingsCount
	}
	if err := tx.Create(&orphan).Error; err != nil {
		log.Printf("[ERROR] gagal insert orphan: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data anak")
	}

	// ---- Step 6: siblings ----
	// Sibling TIDAK pernah bawa resolve relasinya sendiri: selalu mewarisi
	// father/mother/guardian milik anak utama + orphan_id yang baru dibuat.
	siblingsAdded := 0
	for i := range req.Siblings {
		s := &req.Siblings[i]
		if strings.TrimSpace(s.FullName) == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Nama sibling wajib diisi")
		}
		sibling := relativesModel.SiblingModel{
			SiblingUID:         uuid.New(),
			SiblingOrphanID:    orphan.OrphanID,
			SiblingFullName:    strings.TrimSpace(s.FullName),
			SiblingDateOfBirth: dto.ParseDate(s.DateOfBirth),
			SiblingGender:      "male",
			SiblingIsStudying:  true,
			SiblingFatherID:    fatherID,
			SiblingMotherID:    motherID,
			SiblingGuardianID:  guardianID,
			SiblingNotes:       s.Notes,
		}
		if s.Gender != nil {
			sibling.SiblingGender = *s.Gender
		}
		if s.IsStudying != nil {
			sibling.SiblingIsStudying = *s.IsStudying
		}
		if err := tx.Create(&sibling).Error; err != nil {
			log.Printf("[ERROR] gagal insert sibling #%d: %v", i+1, err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat data sibling")
		}
		siblingsAdded++
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("[ERROR] commit create orphan gagal: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan data anak")
	}
	committed = true

	return &CreateOrphanResult{
		OrphanID:      orphan.OrphanID,
		OrphanUID:     orphan.OrphanUID,
		SiblingsAdded: siblingsAdded,
	}, nil
}
