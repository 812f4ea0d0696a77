package page

import (
	"github.com/shelteraid/shelteraid/util"
)

// brand is inline HTML, CommonMark passes it through.
const brand = `Shelter<span class="text-green-500">AID</span>`

const historyText = `
	Public health agencies exist to improve the health of everyone in their communities, especially
	vulnerable groups like people experiencing unsheltered homelessness. That said, it’s difficult to
	help people if you can’t find them. Currently, public health agencies rely on annual federal counts
	and ad hoc community reporting to quantify homelessness and identify encampments, and data is often
	incomplete, inaccurate, and out of date.`

const aboutText = `
	**ShelterAID** solves this encampment identifying problem by using machine learning and satellite
	imagery of cities to detect and map tents and encampments as they become active. Our tool helps
	public agencies find, count, and better support people living in unsheltered homelessness by
	providing resources exactly when and where they are most needed.`

const missionText = `
	` + brand + `'s **PUBLIC HEALTH RESOURCES MAP** uses computer vision technology to help improve
	safety and public health outcomes for people living in unsheltered homelessness.`

// rendered once, the page never changes at runtime
var (
	historyHTML = util.MarkdownString(historyText)
	aboutHTML   = util.MarkdownString(aboutText)
	missionHTML = util.MarkdownString(missionText)
)
