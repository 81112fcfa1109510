package repository

import (
	"time"

	"internship-portal-backend/app/model"

	"gorm.io/gorm"
)

// Struktur hasil agregasi dashboard. Semua map by_* adalah fungsi total:
// setiap key yang mungkin selalu ada, bernilai 0 jika tidak ada record.

// InternshipStatsResult: statistik pengajuan magang.
type InternshipStatsResult struct {
	Total       int64            `json:"total"`
	ByStatus    map[string]int64 `json:"by_status"`
	ByType      map[string]int64 `json:"by_type"`
	AvgProgress float64          `json:"avg_progress"`
	New7Days    int64            `json:"new_7_days"`
	New30Days   int64            `json:"new_30_days"`
}

// StudentPerformanceResult: ringkasan kinerja mahasiswa.
type StudentPerformanceResult struct {
	TotalStudents          int64            `json:"total_students"`
	ByAcademicStatus       map[string]int64 `json:"by_academic_status"`
	WithAcceptedInternship int64            `json:"with_accepted_internship"`
	AvgAcceptedProgress    float64          `json:"avg_accepted_progress"`
	ApprovedReports        int64            `json:"approved_reports"`
}

// SystemUsageResult: aktivitas pemakaian portal.
type SystemUsageResult struct {
	TotalUsers     int64 `json:"total_users"`
	ActiveUsers    int64 `json:"active_users"`
	Logins7Days    int64 `json:"logins_7_days"`
	Logins30Days   int64 `json:"logins_30_days"`
	Records7Days   int64 `json:"records_7_days"`
	Records30Days  int64 `json:"records_30_days"`
}

// LogbookSummaryResult: ringkasan logbook.
type LogbookSummaryResult struct {
	Total               int64 `json:"total"`
	New7Days            int64 `json:"new_7_days"`
	New30Days           int64 `json:"new_30_days"`
	WithSupervisorNotes int64 `json:"with_supervisor_notes"`
}

// ReportSummaryResult: ringkasan laporan.
type ReportSummaryResult struct {
	Total     int64            `json:"total"`
	ByStatus  map[string]int64 `json:"by_status"`
	New7Days  int64            `json:"new_7_days"`
	New30Days int64            `json:"new_30_days"`
}

// GuidanceClassStatsResult: statistik kelas bimbingan + presensi.
type GuidanceClassStatsResult struct {
	TotalClasses   int64            `json:"total_classes"`
	TotalRows      int64            `json:"total_attendance_rows"`
	Attended       int64            `json:"attended"`
	ByMethod       map[string]int64 `json:"by_method"`
	AttendanceRate float64          `json:"attendance_rate"`
}

// TutorialStatsResult: statistik tutorial.
type TutorialStatsResult struct {
	Total         int64            `json:"total"`
	ByAccessLevel map[string]int64 `json:"by_access_level"`
}

// UserStatsResult: statistik user.
type UserStatsResult struct {
	Total    int64            `json:"total"`
	ByRole   map[string]int64 `json:"by_role"`
	Active   int64            `json:"active"`
	Inactive int64            `json:"inactive"`
}

// FaqStatsResult: statistik FAQ.
type FaqStatsResult struct {
	Total      int64            `json:"total"`
	Active     int64            `json:"active"`
	Inactive   int64            `json:"inactive"`
	ByCategory map[string]int64 `json:"by_category"`
}

// GlobalVariableStatsResult: statistik global variable.
type GlobalVariableStatsResult struct {
	Total  int64            `json:"total"`
	ByType map[string]int64 `json:"by_type"`
}

// AnalyticsRepository menjalankan query agregat read-only untuk dashboard
// admin. Tidak ada side effect; kategori kosong tetap muncul bernilai 0.
type AnalyticsRepository interface {
	InternshipStats() (*InternshipStatsResult, error)
	StudentPerformance() (*StudentPerformanceResult, error)
	SystemUsage() (*SystemUsageResult, error)
	LogbookSummary() (*LogbookSummaryResult, error)
	ReportSummary() (*ReportSummaryResult, error)
	GuidanceClassStats() (*GuidanceClassStatsResult, error)
	TutorialStats() (*TutorialStatsResult, error)
	UserStats() (*UserStatsResult, error)
	FaqStats() (*FaqStatsResult, error)
	GlobalVariableStats() (*GlobalVariableStatsResult, error)
}

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository membuat instance repository analytics.
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

type groupRow struct {
	Label string `gorm:"column:label"`
	Total int64  `gorm:"column:total"`
}

// countGrouped menjalankan COUNT ... GROUP BY col, lalu zero-fill
// dengan seluruh key yang di-enumerate di keys.
func (r *analyticsRepository) countGrouped(m interface{}, col string, keys []string) (map[string]int64, error) {
	out := make(map[string]int64, len(keys))
	for _, k := range keys {
		out[k] = 0
	}

	var rows []groupRow
	err := r.db.Model(m).
		Select(col + " AS label, COUNT(*) AS total").
		Group(col).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		label := row.Label
		if label == "" {
			label = "unknown"
		}
		out[label] = row.Total
	}
	return out, nil
}

func (r *analyticsRepository) countSince(m interface{}, since time.Time) (int64, error) {
	var c int64
	err := r.db.Model(m).Where("created_at >= ?", since).Count(&c).Error
	return c, err
}

func (r *analyticsRepository) InternshipStats() (*InternshipStatsResult, error) {
	res := &InternshipStatsResult{}

	if err := r.db.Model(&model.Internship{}).Count(&res.Total).Error; err != nil {
		return nil, err
	}

	statusKeys := make([]string, 0, 3)
	for _, s := range model.AllInternshipStatuses() {
		statusKeys = append(statusKeys, string(s))
	}
	byStatus, err := r.countGrouped(&model.Internship{}, "status", statusKeys)
	if err != nil {
		return nil, err
	}
	res.ByStatus = byStatus

	typeKeys := make([]string, 0, 2)
	for _, t := range model.AllInternshipTypes() {
		typeKeys = append(typeKeys, string(t))
	}
	byType, err := r.countGrouped(&model.Internship{}, "type", typeKeys)
	if err != nil {
		return nil, err
	}
	res.ByType = byType

	if err := r.db.Model(&model.Internship{}).
		Where("status = ?", model.InternshipAccepted).
		Select("COALESCE(AVG(progress), 0)").
		Scan(&res.AvgProgress).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	if res.New7Days, err = r.countSince(&model.Internship{}, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if res.New30Days, err = r.countSince(&model.Internship{}, now.AddDate(0, 0, -30)); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *analyticsRepository) StudentPerformance() (*StudentPerformanceResult, error) {
	res := &StudentPerformanceResult{}

	if err := r.db.Model(&model.MahasiswaProfile{}).Count(&res.TotalStudents).Error; err != nil {
		return nil, err
	}

	byStatus, err := r.countGrouped(&model.MahasiswaProfile{}, "academic_status",
		[]string{model.AcademicAktif, model.AcademicCuti, model.AcademicLulus})
	if err != nil {
		return nil, err
	}
	res.ByAcademicStatus = byStatus

	if err := r.db.Model(&model.Internship{}).
		Where("status = ?", model.InternshipAccepted).
		Distinct("user_id").
		Count(&res.WithAcceptedInternship).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Internship{}).
		Where("status = ?", model.InternshipAccepted).
		Select("COALESCE(AVG(progress), 0)").
		Scan(&res.AvgAcceptedProgress).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Report{}).
		Where("status = ?", model.ReportApproved).
		Count(&res.ApprovedReports).Error; err != nil {
		return nil, err
	}

	return res, nil
}

func (r *analyticsRepository) SystemUsage() (*SystemUsageResult, error) {
	res := &SystemUsageResult{}
	now := time.Now()

	if err := r.db.Model(&model.User{}).Count(&res.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.User{}).Where("is_active = ?", true).Count(&res.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.User{}).
		Where("last_login_at >= ?", now.AddDate(0, 0, -7)).
		Count(&res.Logins7Days).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.User{}).
		Where("last_login_at >= ?", now.AddDate(0, 0, -30)).
		Count(&res.Logins30Days).Error; err != nil {
		return nil, err
	}

	// Aktivitas pencatatan = pengajuan + logbook + laporan dalam window
	for _, win := range []struct {
		days int
		dst  *int64
	}{
		{7, &res.Records7Days},
		{30, &res.Records30Days},
	} {
		since := now.AddDate(0, 0, -win.days)
		var sum int64
		for _, m := range []interface{}{&model.Internship{}, &model.Logbook{}, &model.Report{}} {
			c, err := r.countSince(m, since)
			if err != nil {
				return nil, err
			}
			sum += c
		}
		*win.dst = sum
	}

	return res, nil
}

func (r *analyticsRepository) LogbookSummary() (*LogbookSummaryResult, error) {
	res := &LogbookSummaryResult{}
	now := time.Now()
	var err error

	if err = r.db.Model(&model.Logbook{}).Count(&res.Total).Error; err != nil {
		return nil, err
	}
	if res.New7Days, err = r.countSince(&model.Logbook{}, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if res.New30Days, err = r.countSince(&model.Logbook{}, now.AddDate(0, 0, -30)); err != nil {
		return nil, err
	}
	if err = r.db.Model(&model.Logbook{}).
		Where("supervisor_notes IS NOT NULL").
		Count(&res.WithSupervisorNotes).Error; err != nil {
		return nil, err
	}

	return res, nil
}

func (r *analyticsRepository) ReportSummary() (*ReportSummaryResult, error) {
	res := &ReportSummaryResult{}
	now := time.Now()
	var err error

	if err = r.db.Model(&model.Report{}).Count(&res.Total).Error; err != nil {
		return nil, err
	}

	statusKeys := make([]string, 0, 3)
	for _, s := range model.AllReportStatuses() {
		statusKeys = append(statusKeys, string(s))
	}
	if res.ByStatus, err = r.countGrouped(&model.Report{}, "status", statusKeys); err != nil {
		return nil, err
	}

	if res.New7Days, err = r.countSince(&model.Report{}, now.AddDate(0, 0, -7)); err != nil {
		return nil, err
	}
	if res.New30Days, err = r.countSince(&model.Report{}, now.AddDate(0, 0, -30)); err != nil {
		return nil, err
	}

	return res, nil
}

func (r *analyticsRepository) GuidanceClassStats() (*GuidanceClassStatsResult, error) {
	res := &GuidanceClassStatsResult{}
	var err error

	if err = r.db.Model(&model.GuidanceClass{}).Count(&res.TotalClasses).Error; err != nil {
		return nil, err
	}
	if err = r.db.Model(&model.GuidanceClassAttendance{}).Count(&res.TotalRows).Error; err != nil {
		return nil, err
	}
	if err = r.db.Model(&model.GuidanceClassAttendance{}).
		Where("attended_at IS NOT NULL").
		Count(&res.Attended).Error; err != nil {
		return nil, err
	}

	// by_method hanya menghitung baris yang sudah presensi
	byMethod := map[string]int64{
		string(model.AttendanceQR):     0,
		string(model.AttendanceManual): 0,
	}
	var rows []groupRow
	if err = r.db.Model(&model.GuidanceClassAttendance{}).
		Select("attendance_method AS label, COUNT(*) AS total").
		Where("attendance_method IS NOT NULL").
		Group("attendance_method").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		byMethod[row.Label] = row.Total
	}
	res.ByMethod = byMethod

	if res.TotalRows > 0 {
		res.AttendanceRate = float64(res.Attended) / float64(res.TotalRows)
	}

	return res, nil
}

func (r *analyticsRepository) TutorialStats() (*TutorialStatsResult, error) {
	res := &TutorialStatsResult{}

	if err := r.db.Model(&model.Tutorial{}).Count(&res.Total).Error; err != nil {
		return nil, err
	}

	byLevel, err := r.countGrouped(&model.Tutorial{}, "access_level",
		[]string{"all", model.RoleDosen, model.RoleMahasiswa})
	if err != nil {
		return nil, err
	}
	res.ByAccessLevel = byLevel

	return res, nil
}

func (r *analyticsRepository) UserStats() (*UserStatsResult, error) {
	res := &UserStatsResult{
		ByRole: make(map[string]int64, 4),
	}
	for _, name := range model.AllRoles() {
		res.ByRole[name] = 0
	}

	if err := r.db.Model(&model.User{}).Count(&res.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.User{}).Where("is_active = ?", true).Count(&res.Active).Error; err != nil {
		return nil, err
	}
	res.Inactive = res.Total - res.Active

	var rows []groupRow
	err := r.db.Model(&model.User{}).
		Select("roles.name AS label, COUNT(*) AS total").
		Joins("JOIN roles ON roles.id = users.role_id").
		Group("roles.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		res.ByRole[row.Label] = row.Total
	}

	return res, nil
}

func (r *analyticsRepository) FaqStats() (*FaqStatsResult, error) {
	res := &FaqStatsResult{}

	if err := r.db.Model(&model.Faq{}).Count(&res.Total).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Faq{}).Where("is_active = ?", true).Count(&res.Active).Error; err != nil {
		return nil, err
	}
	res.Inactive = res.Total - res.Active

	byCategory, err := r.countGrouped(&model.Faq{}, "category", nil)
	if err != nil {
		return nil, err
	}
	res.ByCategory = byCategory

	return res, nil
}

func (r *analyticsRepository) GlobalVariableStats() (*GlobalVariableStatsResult, error) {
	res := &GlobalVariableStatsResult{}

	if err := r.db.Model(&model.GlobalVariable{}).Count(&res.Total).Error; err != nil {
		return nil, err
	}

	byType, err := r.countGrouped(&model.GlobalVariable{}, "type", []string{"string", "int", "bool"})
	if err != nil {
		return nil, err
	}
	res.ByType = byType

	return res, nil
}
