package handlers

const (
	textStoreError = "❌ Terjadi error. Silakan coba lagi."

	textWelcomeNew = "Assalamu'alaikum! 👋\n\n" +
		"🤖 <b>Selamat datang di Bot Tarbiyah</b>\n" +
		"Bot ini membantu Anda mencatat aktivitas tarbiyah harian.\n\n" +
		"📝 <b>Langkah pertama:</b>\n" +
		"Silakan set nama Anda dengan format:\n" +
		"<b>Nama: [nama anda]</b>\n\n" +
		"Contoh: <b>Nama: Ahmad</b>\n\n" +
		"📋 <b>Command tersedia:</b>\n" +
		"• /catat - Catat tarbiyah hari ini\n" +
		"• /catat haid - Catat dengan daftar haid\n" +
		"• /status - Lihat status tarbiyah hari ini\n" +
		"• /settim - Atur peran handler tim"

	textWelcomeBack = "Assalamu'alaikum %s! 👋\n\n" +
		"🤖 <b>Bot Tarbiyah</b>\n" +
		"Bot ini membantu Anda mencatat aktivitas tarbiyah harian.\n\n" +
		"📋 <b>Command tersedia:</b>\n" +
		"• /catat - Catat tarbiyah hari ini\n" +
		"• /catat haid - Catat dengan daftar haid\n" +
		"• /status - Lihat status tarbiyah hari ini\n" +
		"• /settim - Atur peran handler tim\n\n" +
		"💡 <b>Tips:</b> Gunakan /catat setiap hari untuk mencatat aktivitas tarbiyah Anda!"

	textNeedName = "Silakan set nama Anda terlebih dahulu dengan mengetik: <b>Nama: [nama anda]</b>\n\n" +
		"Contoh: <b>Nama: Ahmad</b>"

	textNameInvalid = "Format nama tidak valid. Gunakan format:\n<b>Nama: [nama anda]</b>"

	textNameSaved = "✅ Nama berhasil disimpan: <b>%s</b>\n\n" +
		"Sekarang Anda bisa menggunakan:\n" +
		"• /catat - untuk mencatat tarbiyah\n" +
		"• /status - untuk melihat status tarbiyah"

	textAskTeam      = "👥 Apakah Anda seorang <b>handler tim</b>?\nHandler tim mendapat satu poin tarbiyah tambahan."
	textTeamSavedYes = "✅ Peran tersimpan: <b>handler tim</b>.\nPoin <b>Handle Tim</b> ditambahkan ke daftar Anda.\n\nGunakan /catat untuk mulai mencatat."
	textTeamSavedNo  = "✅ Peran tersimpan: <b>bukan handler tim</b>.\n\nGunakan /catat untuk mulai mencatat."

	textCatatHeader = "📋 <b>Catat Tarbiyah - %s</b>\n👤 <b>Nama:</b> %s\n\nSilakan klik untuk setiap aktivitas tarbiyah:"
	textCatatHaid   = "📋 <b>Catat Tarbiyah (Haid) - %s</b>\n👤 <b>Nama:</b> %s\n\nSilakan klik untuk setiap aktivitas tarbiyah:"

	textPointSaved = "%d. <b>%s</b>\nStatus: %s\n\n✅ <i>Tersimpan! Gunakan /catat untuk mengedit.</i>"

	textAskReason = "🟡 Silakan tulis alasan udzhur untuk <b>%s</b> (3-100 karakter)."

	textReasonTooShort = "❌ Alasan terlalu pendek (minimal 3 karakter). Silakan tulis lagi."
	textReasonTooLong  = "❌ Alasan terlalu panjang (maksimal 100 karakter). Silakan tulis lagi."
	textReasonSaved    = "✅ Udzhur tersimpan untuk <b>%s</b>: %s"

	textModeConfirm = "⚠️ Anda sudah mencatat data hari ini dengan mode <b>%s</b>.\n" +
		"Ganti ke mode <b>%s</b> akan <b>menghapus semua data hari ini</b> dan tidak bisa dikembalikan.\n\n" +
		"Lanjutkan?"
	textModeCancelled = "❌ Ganti mode dibatalkan. Data hari ini tetap tersimpan."
	textModeChanged   = "✅ Mode diganti ke <b>%s</b>. Data hari ini sudah dikosongkan."

	textStatusHeader = "📊 <b>Status Tarbiyah - %s</b>\n👤 <b>Nama:</b> %s\n\n"
	textStatusEmpty  = "Belum ada data tarbiyah untuk hari ini.\nGunakan /catat untuk mulai mencatat."
	textProgress     = "\n📈 <b>Progress:</b> %d/%d (%d%%)"

	textReportSent   = "📊 Daily report berhasil dikirim ke grup."
	textReportFailed = "❌ Gagal mengirim daily report: %v"
)

const (
	btnDone   = "✅ Sudah"
	btnUndone = "❌ Belum"
	btnUdzhur = "🟡 Udzhur"

	btnConfirmSwitch = "✅ Ya, ganti mode"
	btnCancelSwitch  = "❌ Batal"

	btnTeamYes = "✅ Ya"
	btnTeamNo  = "❌ Tidak"

	statusDone     = "✅ Sudah"
	statusUndone   = "❌ Belum"
	statusUnset    = "⚪ Belum dipilih"
	statusExcused  = "🟡 Udzhur: %s"
	statusAwaiting = "🟡 Menunggu alasan udzhur…"
)
