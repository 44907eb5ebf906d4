// Package catalog reads lesson volumes from YAML documents.
//
// Three volumes are compiled into the binary (liberation, conquete,
// royaume), each named after its key. Other volumes can be loaded from
// files with the same layout; name defaults to the file's base name:
//
//	name: royaume
//	cover:
//	  title: Royaume
//	  subtitle: De Saül à Salomon
//	  image: https://cdn.pixabay.com/photo/...jpg
//	notice: |-
//	  **Sources et droits :**
//	  ...
//	introduction: {heading: Introduction, text: ...}
//	labels: {reference: "📖 ", termHeader: Mot, definitionHeader: Définition}
//	colors: {title: darkred}
//	lessons:
//	  - title: Le peuple demande un roi
//	    reference: 1 Samuel 8
//	    narrative: ...
//	    image: https://...
//	    citations: [{label: "1 Samuel 8 : 7", text: ...}]
//	    vocabulary: [{term: Prophète, definition: Messager de Dieu.}]
//	    reflection: ...
//	    questions: [...]
//	closing: {heading: Conclusion, text: ...}
//
// Unknown keys are rejected so typos surface at load time.
package catalog
