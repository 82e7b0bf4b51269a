package catalog

// Builtin returns the builtin timestamp format catalog in registration
// order. The order is stable across releases because it feeds the
// deterministic last-resort tiebreak in classification reports.
//
// Several entries deliberately share a pattern (US vs EU slashed datetimes,
// RFC 3339 vs W3C-DTF, compact vs continuous digit runs): the strings are
// indistinguishable in the wild and the disambiguator is responsible for
// surfacing them as ambiguous rather than picking one by accident.
func Builtin() []FormatDefinition {
	return []FormatDefinition{
		// ISO 8601
		{Name: "ISO_DATE", Pattern: `^\d{4}-\d{2}-\d{2}$`, Template: "YYYY-MM-DD", Category: CategoryISO, Example: "2025-05-19"},
		{Name: "ISO_DATETIME", Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`, Template: "YYYY-MM-DDTHH:MM:SS", Category: CategoryISO, Example: "2025-05-19T14:30:15"},
		{Name: "ISO_DATETIME_UTC", Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}Z$`, Template: "YYYY-MM-DDTHH:MM:SSZ", Category: CategoryISO, Example: "2025-05-19T14:30:15Z"},
		{Name: "ISO_DATETIME_TZ", Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}$`, Template: "YYYY-MM-DDTHH:MM:SS±hh:mm", Category: CategoryISO, Example: "2025-05-19T14:30:15+02:00"},
		{Name: "ISO_DATETIME_MS", Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,9}$`, Template: "YYYY-MM-DDTHH:MM:SS.fff", Category: CategoryISO, Example: "2025-05-19T14:30:15.123"},
		{Name: "ISO_DATETIME_MS_UTC", Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,9}Z$`, Template: "YYYY-MM-DDTHH:MM:SS.fffZ", Category: CategoryISO, Example: "2025-05-19T14:30:15.123Z"},
		{Name: "ISO_DATE_BASIC", Pattern: `^\d{8}$`, Template: "YYYYMMDD", Category: CategoryISO, Example: "20250519"},
		{Name: "ISO_DATETIME_BASIC", Pattern: `^\d{8}T\d{6}$`, Template: "YYYYMMDDTHHMMSS", Category: CategoryISO, Example: "20250519T143015"},
		{Name: "ISO_ORDINAL_DATE", Pattern: `^\d{4}-\d{3}$`, Template: "YYYY-DDD", Category: CategoryISO, Example: "2025-139"},
		{Name: "ISO_WEEK_DATE", Pattern: `^\d{4}-W\d{2}-\d{1}$`, Template: "YYYY-Www-D", Category: CategoryISO, Example: "2025-W21-1"},

		// Unix / epoch
		{Name: "UNIX_SECONDS", Pattern: `^[1-9]\d{9}$`, Template: "seconds since epoch", Category: CategoryUnixEpoch, Example: "1716159600"},
		{Name: "UNIX_MILLISECONDS", Pattern: `^[1-9]\d{12}$`, Template: "milliseconds since epoch", Category: CategoryUnixEpoch, Example: "1716159600000"},
		{Name: "UNIX_MICROSECONDS", Pattern: `^[1-9]\d{15}$`, Template: "microseconds since epoch", Category: CategoryUnixEpoch, Example: "1716159600000000"},
		{Name: "UNIX_NANOSECONDS", Pattern: `^[1-9]\d{18}$`, Template: "nanoseconds since epoch", Category: CategoryUnixEpoch, Example: "1716159600000000000"},

		// RFC standards
		{Name: "RFC_822_1123", Pattern: `^[A-Z][a-z]{2}, \d{1,2} [A-Z][a-z]{2} \d{4} \d{2}:\d{2}:\d{2} GMT$`, Template: "Day, DD Mon YYYY HH:MM:SS GMT", Category: CategoryRFC, Example: "Mon, 19 May 2025 14:30:15 GMT"},
		{Name: "RFC_850_1036", Pattern: `^[A-Z][a-z]+, \d{1,2}-[A-Z][a-z]{2}-\d{2} \d{2}:\d{2}:\d{2} GMT$`, Template: "Weekday, DD-Mon-YY HH:MM:SS GMT", Category: CategoryRFC, Example: "Monday, 19-May-25 14:30:15 GMT"},
		{Name: "ANSI_C_ASCTIME", Pattern: `^[A-Z][a-z]{2} [A-Z][a-z]{2} \d{1,2} \d{2}:\d{2}:\d{2} \d{4}$`, Template: "Day Mon DD HH:MM:SS YYYY", Category: CategoryRFC, Example: "Mon May 19 14:30:15 2025"},
		{Name: "RFC_3339", Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}$`, Template: "YYYY-MM-DDTHH:MM:SS±hh:mm", Category: CategoryRFC, Example: "2025-05-19T14:30:15+02:00"},

		// Regional and localized
		{Name: "US_DATETIME", Pattern: `^\d{1,2}/\d{1,2}/\d{4} \d{2}:\d{2}:\d{2}$`, Template: "MM/DD/YYYY HH:MM:SS", Category: CategoryRegional, Example: "05/19/2025 14:30:15"},
		{Name: "EU_DATETIME", Pattern: `^\d{1,2}/\d{1,2}/\d{4} \d{2}:\d{2}:\d{2}$`, Template: "DD/MM/YYYY HH:MM:SS", Category: CategoryRegional, Example: "19/05/2025 14:30:15"},
		{Name: "ASIAN_DATETIME", Pattern: `^\d{4}/\d{1,2}/\d{1,2} \d{2}:\d{2}:\d{2}$`, Template: "YYYY/MM/DD HH:MM:SS", Category: CategoryRegional, Example: "2025/05/19 14:30:15"},
		{Name: "GERMAN_DATETIME", Pattern: `^\d{1,2}\.\d{1,2}\.\d{4} \d{2}:\d{2}:\d{2}$`, Template: "DD.MM.YYYY HH:MM:SS", Category: CategoryRegional, Example: "19.05.2025 14:30:15"},
		{Name: "UK_DATETIME", Pattern: `^\d{1,2}-[A-Z][a-z]{2}-\d{4} \d{2}:\d{2}:\d{2}$`, Template: "DD-Mon-YYYY HH:MM:SS", Category: CategoryRegional, Example: "19-May-2025 14:30:15"},
		{Name: "SHORT_EU_DATETIME", Pattern: `^\d{1,2}-\d{1,2}-\d{2} \d{2}:\d{2}:\d{2}$`, Template: "DD-MM-YY HH:MM:SS", Category: CategoryRegional, Example: "19-05-25 14:30:15"},
		{Name: "SHORT_US_DATETIME", Pattern: `^\d{1,2}-\d{1,2}-\d{2} \d{2}:\d{2}:\d{2}$`, Template: "MM-DD-YY HH:MM:SS", Category: CategoryRegional, Example: "05-19-25 14:30:15"},
		{Name: "TIME_LEADING_FORMAT", Pattern: `^\d{2}:\d{2}:\d{2} \d{1,2}/\d{1,2}/\d{4}$`, Template: "HH:MM:SS DD/MM/YYYY", Category: CategoryRegional, Example: "14:30:15 19/05/2025"},

		// Time-only
		{Name: "TIME_24H", Pattern: `^\d{2}:\d{2}:\d{2}$`, Template: "HH:MM:SS", Category: CategoryTimeOnly, Example: "14:30:15"},
		{Name: "TIME_24H_MS", Pattern: `^\d{2}:\d{2}:\d{2}\.\d{1,3}$`, Template: "HH:MM:SS.fff", Category: CategoryTimeOnly, Example: "14:30:15.123"},
		{Name: "TIME_12H", Pattern: `^\d{1,2}:\d{2}:\d{2} [AP]M$`, Template: "h:MM:SS AM/PM", Category: CategoryTimeOnly, Example: "2:30:15 PM"},
		{Name: "TIME_12H_SHORT", Pattern: `^\d{1,2}:\d{2} [AP]M$`, Template: "h:MM AM/PM", Category: CategoryTimeOnly, Example: "2:30 PM"},
		{Name: "TIME_CONTINUOUS_MS", Pattern: `^\d{6}\d{1,3}$`, Template: "HHMMSSfff", Category: CategoryTimeOnly, Example: "143015123"},
		{Name: "TIME_MILITARY", Pattern: `^\d{6}$`, Template: "HHMMSS", Category: CategoryTimeOnly, Example: "143015"},

		// Database
		{Name: "SQL_TIMESTAMP", Pattern: `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`, Template: "YYYY-MM-DD HH:MM:SS", Category: CategoryDatabase, Example: "2025-05-19 14:30:15"},
		{Name: "SQL_TIMESTAMP_MS", Pattern: `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{1,6}$`, Template: "YYYY-MM-DD HH:MM:SS.ffffff", Category: CategoryDatabase, Example: "2025-05-19 14:30:15.123456"},
		{Name: "ORACLE_TIMESTAMP", Pattern: `^\d{1,2}-[A-Z]{3}-\d{2} \d{1,2}\.\d{2}\.\d{2}\.\d{1,4} [AP]M$`, Template: "DD-MON-YY h.MM.SS.ffff AM/PM", Category: CategoryDatabase, Example: "19-MAY-25 2.30.15.1234 PM"},
		{Name: "DB2_TIMESTAMP", Pattern: `^\d{4}-\d{2}-\d{2}-\d{2}\.\d{2}\.\d{2}\.\d{1,6}$`, Template: "YYYY-MM-DD-HH.MM.SS.ffffff", Category: CategoryDatabase, Example: "2025-05-19-14.30.15.123456"},
		{Name: "MSSQL_TIMESTAMP", Pattern: `^\d{8} \d{2}:\d{2}:\d{2}$`, Template: "YYYYMMDD HH:MM:SS", Category: CategoryDatabase, Example: "20250519 14:30:15"},

		// Programming language / system specific
		{Name: "COMPACT_TIMESTAMP", Pattern: `^\d{14}\d{1,3}$`, Template: "YYYYMMDDHHMMSSfff", Category: CategoryLanguageSystem, Example: "20250519143015234"},
		{Name: "POSTGRES_TIMESTAMP_TZ", Pattern: `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{1,6}[+-]\d{2}:\d{2}$`, Template: "YYYY-MM-DD HH:MM:SS.ffffff±hh:mm", Category: CategoryLanguageSystem, Example: "2025-05-19 14:30:15.123456+02:00"},
		{Name: "TAGGED_UNIX", Pattern: `^@\d{10}$`, Template: "@seconds", Category: CategoryLanguageSystem, Example: "@1716159600"},
		{Name: "SHORT_DATE", Pattern: `^\d{2}-\d{2}-\d{2}$`, Template: "YY-MM-DD", Category: CategoryLanguageSystem, Example: "25-05-19"},
		{Name: "SAS_DATETIME", Pattern: `^\d{1,2}[A-Z]{3}\d{4}:\d{2}:\d{2}:\d{2}$`, Template: "DDMONYYYY:HH:MM:SS", Category: CategoryLanguageSystem, Example: "19MAY2025:14:30:15"},
		{Name: "DOTNET_DATETIME", Pattern: `^\d{1,2}/\d{1,2}/\d{4} \d{1,2}:\d{2}:\d{2} [AP]M$`, Template: "M/D/YYYY h:MM:SS AM/PM", Category: CategoryLanguageSystem, Example: "5/19/2025 2:30:15 PM"},

		// Legacy and specialized
		{Name: "HYPHEN_SEPARATED", Pattern: `^\d{4}-\d{2}-\d{2}-\d{2}-\d{2}-\d{2}$`, Template: "YYYY-MM-DD-HH-MM-SS", Category: CategoryLegacy, Example: "2025-05-19-14-30-15"},
		{Name: "CONTINUOUS_DATETIME", Pattern: `^\d{14}\d{1,3}$`, Template: "YYYYMMDDHHMMSS+f", Category: CategoryLegacy, Example: "20250519143015234"},
		{Name: "NASA_MISSION", Pattern: `^\d{2}\.\d{3}/\d{2}:\d{2}:\d{2}$`, Template: "YY.DDD/HH:MM:SS", Category: CategoryLegacy, Example: "25.139/14:30:15"},
		{Name: "EXIF_DATETIME", Pattern: `^\d{4}:\d{2}:\d{2} \d{2}:\d{2}:\d{2}$`, Template: "YYYY:MM:DD HH:MM:SS", Category: CategoryLegacy, Example: "2025:05:19 14:30:15"},
		{Name: "JULIAN_DATE", Pattern: `^24\d{4}\.\d{1,5}$`, Template: "Julian day number", Category: CategoryLegacy, Example: "245950.5"},
		{Name: "MODIFIED_JULIAN_DATE", Pattern: `^\d{5}\.\d{1,5}$`, Template: "modified Julian day", Category: CategoryLegacy, Example: "60814.5"},
		{Name: "ORDINAL_DATE_SHORT", Pattern: `^\d{2}\d{3}$`, Template: "YYDDD", Category: CategoryLegacy, Example: "25139"},
		// TOD clock values in the current era start with 1. Accepting any
		// 17-digit run would swallow every compact timestamp with a
		// milliseconds tail.
		{Name: "IBM_MAINFRAME", Pattern: `^1\d{16}$`, Template: "TOD clock units", Category: CategoryLegacy, Example: "17161596000000000"},

		// Industry-specific
		{Name: "AVIATION_METAR", Pattern: `^\d{2}\d{4}Z [A-Z]{3} \d{2}$`, Template: "DDHHMMZ MON YY", Category: CategoryIndustry, Example: "191430Z MAY 25"},
		{Name: "BROADCAST_TIMECODE", Pattern: `^\d{1,3}:\d{2}:\d{2}:\d{2}:\d{2}$`, Template: "DDD:HH:MM:SS:FF", Category: CategoryIndustry, Example: "139:14:30:15:12"},
		{Name: "SMPTE_TIMECODE", Pattern: `^\d{2}:\d{2}:\d{2}:\d{2}$`, Template: "HH:MM:SS:FF", Category: CategoryIndustry, Example: "14:30:15:12"},
		{Name: "ISO_WEEK", Pattern: `^\d{4}-W\d{2}$`, Template: "YYYY-Www", Category: CategoryIndustry, Example: "2025-W21"},
		{Name: "ALT_ISO_WEEK", Pattern: `^W\d{2}-\d{4}$`, Template: "Www-YYYY", Category: CategoryIndustry, Example: "W21-2025"},
		{Name: "JULIAN_SHORT", Pattern: `^\d{2}\d{3}$`, Template: "YYDDD", Category: CategoryIndustry, Example: "25139"},
		{Name: "AVIATION_MIXED", Pattern: `^\d{4}UTC[A-Z][a-z]{2}\d{1,2}$`, Template: "HHMMUTCMonDD", Category: CategoryIndustry, Example: "1430UTCMay19"},

		// Timezone representations
		{Name: "ZULU_INDICATOR", Pattern: `^.*Z$`, Template: "…Z", Category: CategoryTimezone, Example: "2025-05-19T14:30:15Z"},
		{Name: "ISO_TZ_OFFSET", Pattern: `^.*[+-]\d{2}:\d{2}$`, Template: "…±hh:mm", Category: CategoryTimezone, Example: "2025-05-19T14:30:15+02:00"},
		{Name: "COMPACT_TZ_OFFSET", Pattern: `^.*[+-]\d{4}$`, Template: "…±hhmm", Category: CategoryTimezone, Example: "2025-05-19T14:30:15+0200"},
		{Name: "GMT_OFFSET", Pattern: `^.* GMT[+-]\d{2}:\d{2}$`, Template: "… GMT±hh:mm", Category: CategoryTimezone, Example: "2025-05-19 14:30:15 GMT+02:00"},
		{Name: "NAMED_TIMEZONE", Pattern: `^.* [A-Z]{3,5}$`, Template: "… TZ", Category: CategoryTimezone, Example: "2025-05-19 14:30:15 CEST"},
		{Name: "IANA_TIMEZONE", Pattern: `^.* [A-Za-z]+/[A-Za-z_]+$`, Template: "… Area/Location", Category: CategoryTimezone, Example: "2025-05-19 14:30:15 Europe/Berlin"},
		{Name: "SIMPLE_UTC_OFFSET", Pattern: `^.* UTC[+-]\d{1,2}$`, Template: "… UTC±h", Category: CategoryTimezone, Example: "2025-05-19 14:30:15 UTC+2"},

		// Special format considerations
		{Name: "JAVA8_DATETIME", Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{1,3}[+-]\d{2}:\d{2}\[[A-Za-z/]+\]$`, Template: "YYYY-MM-DDTHH:MM:SS.fff±hh:mm[Zone]", Category: CategoryLanguageSystem, Example: "2025-05-19T14:30:15.123+02:00[Europe/Berlin]"},
		{Name: "SIGNED_UNIX", Pattern: `^[+-]\d{10}$`, Template: "±seconds", Category: CategoryUnixEpoch, Example: "+1716159600"},
		{Name: "HYBRID_TIMESTAMP", Pattern: `^@\d{13}/\d{4}-\d{2}-\d{2}$`, Template: "@millis/YYYY-MM-DD", Category: CategoryLegacy, Example: "@1716159600000/2025-05-19"},
		{Name: "W3C_DTF", Pattern: `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}[+-]\d{2}:\d{2}$`, Template: "YYYY-MM-DDTHH:MM:SS±hh:mm", Category: CategoryRFC, Example: "2025-05-19T14:30:15+02:00"},
		{Name: "XML_TIMESTAMP", Pattern: `^<\d{10}>$`, Template: "<seconds>", Category: CategoryLegacy, Example: "<1716159600>"},
		{Name: "ISO_WEEK_WEEKDAY", Pattern: `^\d{4}\.\d{1,2}\.\d{1}$`, Template: "YYYY.ww.D", Category: CategoryISO, Example: "2025.21.1"},
		{Name: "CUSTOM_EPOCH", Pattern: `^\d{10,19}$`, Template: "epoch at unknown precision", Category: CategoryUnixEpoch, Example: "1716159600"},
		{Name: "COMPACT_DATETIME", Pattern: `^\d{6}-\d{6}$`, Template: "YYMMDD-HHMMSS", Category: CategoryLegacy, Example: "250519-143015"},

		// Calendar-specific
		{Name: "CHINESE_CALENDAR", Pattern: `^[^\x00-\x7F]+$`, Template: "非ASCII日期", Category: CategoryCalendar, Example: "二〇二五年五月十九日"},
		{Name: "ISLAMIC_CALENDAR", Pattern: `^1[3-5]\d{2}-\d{2}-\d{2}$`, Template: "AH YYYY-MM-DD", Category: CategoryCalendar, Example: "1446-11-21"},
		{Name: "HEBREW_CALENDAR", Pattern: `^5[7-8]\d{2}-\d{2}-\d{2}$`, Template: "AM YYYY-MM-DD", Category: CategoryCalendar, Example: "5785-08-21"},
		{Name: "INDIAN_CALENDAR", Pattern: `^\d{4} [A-Z][a-z]+ \d{1,2}$`, Template: "SE YYYY Month D", Category: CategoryCalendar, Example: "1947 Jyaishtha 29"},
		{Name: "THAI_CALENDAR", Pattern: `^25\d{2}-\d{2}-\d{2}$`, Template: "BE YYYY-MM-DD", Category: CategoryCalendar, Example: "2568-05-19"},
		{Name: "JAPANESE_CALENDAR", Pattern: `^[^\x00-\x7F]+$`, Template: "和暦日付", Category: CategoryCalendar, Example: "令和七年五月十九日"},
	}
}
